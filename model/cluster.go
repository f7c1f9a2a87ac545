package model

// ClusterProject is one project entry extracted from a cluster document, keyed by
// its HORIZON project code. FullText is the search and match substrate.
type ClusterProject struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cluster     string `json:"cluster"` // owning document's name (file stem)
	FullText    string `json:"full_text"`
}

// NewClusterProject builds a ClusterProject with its derived full text.
func NewClusterProject(code, title, description, cluster string) ClusterProject {
	return ClusterProject{
		Code:        code,
		Title:       title,
		Description: description,
		Cluster:     cluster,
		FullText:    code + "\n" + title + "\n" + description,
	}
}

// ClusterDocument is one parsed source file and the projects found inside it.
type ClusterDocument struct {
	Name     string           `json:"name"` // file stem, used as the cluster name
	FileName string           `json:"file"`
	Projects []ClusterProject `json:"projects"`
}

// ClusterDocumentDetail summarizes one loaded document for statistics output.
type ClusterDocumentDetail struct {
	Name     string `json:"name"`
	File     string `json:"file"`
	Projects int    `json:"projects"`
}

// ClusterStats aggregates the loaded collection. Computed on demand, never cached.
type ClusterStats struct {
	TotalDocuments    int                     `json:"total_documents"`
	TotalProjects     int                     `json:"total_projects"`
	ProjectsByCluster map[string]int          `json:"projects_by_cluster"`
	DocumentDetails   []ClusterDocumentDetail `json:"document_details"`
}

// KeywordSearchResult is one hit from a keyword search over the cluster collection.
type KeywordSearchResult struct {
	Project         ClusterProject `json:"project"`
	MatchedKeywords []string       `json:"matched_keywords"`
	MatchCount      int            `json:"match_count"`
}
