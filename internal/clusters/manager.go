package clusters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/consortium-kit/horizon-scout/internal/errors"
	"github.com/consortium-kit/horizon-scout/model"
)

// Manager owns the loaded cluster document collection for a directory.
// Reloading replaces the whole collection; there is no incremental merge.
// The collection swap is guarded so reads stay safe while a reload runs;
// readers operate on the snapshot they took.
type Manager struct {
	dir string

	mu        sync.RWMutex
	documents []model.ClusterDocument
}

// NewManager creates a Manager for the given directory. Call Load to populate it.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Load scans the directory and parses every supported file (.txt, .md, .pdf),
// keeping only documents that yielded at least one project. A missing directory
// is created and yields an empty collection; a file that fails to extract or
// parse is logged and skipped. Neither case is an error.
func (m *Manager) Load() error {
	info, err := os.Stat(m.dir)
	if os.IsNotExist(err) {
		log.Printf("Clusters folder not found, creating: %s", m.dir)
		m.replace(nil)
		return os.MkdirAll(m.dir, 0o755)
	}
	if err != nil {
		return fmt.Errorf("failed to access clusters folder %s: %w", m.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("clusters path %s is not a directory", m.dir)
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("failed to read clusters folder %s: %w", m.dir, err)
	}

	var documents []model.ClusterDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		src, ok := sourceFor(name)
		if !ok {
			continue
		}

		content, err := src.Extract(filepath.Join(m.dir, name))
		if err != nil {
			log.Printf("Warning: skipping cluster document %s: %v", name, err)
			continue
		}

		clusterName := strings.TrimSuffix(name, filepath.Ext(name))
		projects := ParseProjects(content, clusterName)
		if len(projects) == 0 {
			log.Printf("No project codes found in %s", name)
			continue
		}

		documents = append(documents, model.ClusterDocument{
			Name:     clusterName,
			FileName: name,
			Projects: projects,
		})
	}

	m.replace(documents)
	return nil
}

// replace swaps the collection in one step. Previously returned snapshots keep
// pointing at the old backing array and stay consistent.
func (m *Manager) replace(documents []model.ClusterDocument) {
	m.mu.Lock()
	m.documents = documents
	m.mu.Unlock()
}

// Documents returns a snapshot of the loaded documents in load order.
func (m *Manager) Documents() []model.ClusterDocument {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.documents
}

// AllProjects flattens every document's projects, in load order.
func (m *Manager) AllProjects() []model.ClusterProject {
	var projects []model.ClusterProject
	for _, doc := range m.Documents() {
		projects = append(projects, doc.Projects...)
	}
	return projects
}

// FindByCode looks up a project by code, case-insensitively. The first match in
// document order wins; duplicate codes later in the collection are shadowed.
func (m *Manager) FindByCode(code string) (model.ClusterProject, error) {
	target := strings.ToLower(code)
	for _, doc := range m.Documents() {
		for _, project := range doc.Projects {
			if strings.ToLower(project.Code) == target {
				return project, nil
			}
		}
	}
	return model.ClusterProject{}, apperrors.NewProjectNotFoundError(code)
}

// SearchByKeywords returns every project whose full text contains at least one
// of the given terms (case-insensitive substring), ranked by match count
// descending. Ties keep encounter order.
func (m *Manager) SearchByKeywords(keywords []string) []model.KeywordSearchResult {
	results := make([]model.KeywordSearchResult, 0)

	for _, doc := range m.Documents() {
		for _, project := range doc.Projects {
			text := strings.ToLower(project.FullText)

			var matched []string
			for _, kw := range keywords {
				if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
					matched = append(matched, kw)
				}
			}
			if len(matched) == 0 {
				continue
			}

			results = append(results, model.KeywordSearchResult{
				Project:         project,
				MatchedKeywords: matched,
				MatchCount:      len(matched),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchCount > results[j].MatchCount
	})

	return results
}

// Stats computes aggregate statistics over the loaded collection.
func (m *Manager) Stats() model.ClusterStats {
	documents := m.Documents()
	stats := model.ClusterStats{
		TotalDocuments:    len(documents),
		ProjectsByCluster: make(map[string]int),
		DocumentDetails:   make([]model.ClusterDocumentDetail, 0, len(documents)),
	}

	for _, doc := range documents {
		stats.TotalProjects += len(doc.Projects)
		stats.ProjectsByCluster[doc.Name] = len(doc.Projects)
		stats.DocumentDetails = append(stats.DocumentDetails, model.ClusterDocumentDetail{
			Name:     doc.Name,
			File:     doc.FileName,
			Projects: len(doc.Projects),
		})
	}

	return stats
}
