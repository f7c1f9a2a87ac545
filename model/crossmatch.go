package model

// ClusterMatch pairs one cluster project with its similarity score against a
// spreadsheet match. MatchedTerms lists the evidence: a "CODE:" entry first when
// the project code matched exactly, then each shared taxonomy keyword.
type ClusterMatch struct {
	Project      ClusterProject `json:"cluster_project"`
	Score        int            `json:"similarity_score"`
	MatchedTerms []string       `json:"matched_terms"`
}

// CrossMatchResult is the ranked outcome of matching one ProjectMatch against the
// whole cluster collection. ClusterMatches holds at most the top 10 by score; the
// untruncated count is kept in TotalMatches.
type CrossMatchResult struct {
	Match          *ProjectMatch  `json:"project"`
	ClusterMatches []ClusterMatch `json:"cluster_matches"`
	TotalMatches   int            `json:"total_matches"`
	HasMatches     bool           `json:"has_matches"`
}

// BatchSummary aggregates a batch cross-match run.
type BatchSummary struct {
	TotalProjects        int     `json:"total_excel_projects"`
	ProjectsWithMatches  int     `json:"projects_with_cluster_matches"`
	TotalClusterMatches  int     `json:"total_cluster_matches"`
	AvgMatchesPerProject float64 `json:"avg_matches_per_project"` // 0 when the batch is empty
}

// BatchCrossMatchResult holds per-project results plus the aggregate summary.
type BatchCrossMatchResult struct {
	Results []CrossMatchResult `json:"results"`
	Summary BatchSummary       `json:"summary"`
}
