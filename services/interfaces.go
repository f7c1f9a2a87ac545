// Package services defines the interfaces the presentation layer consumes,
// decoupling HTTP handlers from the concrete engine implementations.
package services

import "github.com/consortium-kit/horizon-scout/model"

// ProjectAnalyzer runs the tabular analysis over an input workbook.
type ProjectAnalyzer interface {
	// AnalyzeFile loads and analyzes the workbook at path, returning qualifying
	// matches sorted by score descending. A workbook that cannot be loaded is a
	// fatal error; no partial results are returned.
	AnalyzeFile(path string) ([]model.ProjectMatch, error)
}

// ClusterStore manages the loaded cluster document collection.
type ClusterStore interface {
	// Load scans the clusters directory, replacing the current collection.
	Load() error
	// Documents returns the loaded documents in load order.
	Documents() []model.ClusterDocument
	// AllProjects flattens every document's projects, in load order.
	AllProjects() []model.ClusterProject
	// FindByCode looks a project up by code, case-insensitively.
	FindByCode(code string) (model.ClusterProject, error)
	// SearchByKeywords ranks projects by how many of the terms they contain.
	SearchByKeywords(keywords []string) []model.KeywordSearchResult
	// Stats computes aggregate statistics over the collection.
	Stats() model.ClusterStats
}

// CrossMatcher scores spreadsheet matches against the cluster collection.
type CrossMatcher interface {
	Match(match *model.ProjectMatch) model.CrossMatchResult
	MatchAll(matches []model.ProjectMatch) model.BatchCrossMatchResult
}
