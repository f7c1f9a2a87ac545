// Package api exposes the analysis, cluster, and cross-matching engines over
// HTTP. It is a thin presentation layer: it holds the current session's results
// and translates requests into calls on the core services.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/consortium-kit/horizon-scout/config"
	apperrors "github.com/consortium-kit/horizon-scout/internal/errors"
	"github.com/consortium-kit/horizon-scout/internal/export"
	"github.com/consortium-kit/horizon-scout/model"
	"github.com/consortium-kit/horizon-scout/services"
)

// API holds dependencies for API handlers plus the current session state: the
// latest analysis result and its run identifier. The core engines stay
// synchronous and lock-free; the mutex only guards the session fields against
// concurrent HTTP access.
type API struct {
	taxonomy *config.Taxonomy
	analyzer services.ProjectAnalyzer
	clusters services.ClusterStore
	matcher  services.CrossMatcher

	mu         sync.RWMutex
	matches    []model.ProjectMatch
	analysisID string
}

// NewAPI creates a new API handler structure.
func NewAPI(taxonomy *config.Taxonomy, analyzer services.ProjectAnalyzer, clusters services.ClusterStore, matcher services.CrossMatcher) *API {
	return &API{
		taxonomy: taxonomy,
		analyzer: analyzer,
		clusters: clusters,
		matcher:  matcher,
	}
}

// SetupRoutes defines all the API routes.
func SetupRoutes(router *gin.Engine, handler *API) {
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())

	router.GET("/health", handler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.POST("/analyze", handler.AnalyzeHandler)
		apiRoutes.GET("/matches", handler.ListMatchesHandler)
		apiRoutes.GET("/matches/:index/crossmatch", handler.CrossMatchHandler)
		apiRoutes.GET("/crossmatch", handler.CrossMatchAllHandler)

		clusterRoutes := apiRoutes.Group("/clusters")
		{
			clusterRoutes.GET("", handler.ListClustersHandler)
			clusterRoutes.POST("/reload", handler.ReloadClustersHandler)
			clusterRoutes.GET("/stats", handler.ClusterStatsHandler)
			clusterRoutes.GET("/search", handler.SearchClustersHandler)
			clusterRoutes.GET("/projects/:code", handler.GetClusterProjectHandler)
		}

		exportRoutes := apiRoutes.Group("/export")
		{
			exportRoutes.GET("/csv", handler.ExportCSVHandler)
			exportRoutes.GET("/json", handler.ExportJSONHandler)
		}
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// analyzeRequest is the body of POST /api/analyze.
type analyzeRequest struct {
	Path string `json:"path"`
}

// AnalyzeHandler runs a full analysis over the workbook at the given path and
// replaces the session's current result.
func (api *API) AnalyzeHandler(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Workbook path is required")
		return
	}

	matches, err := api.analyzer.AnalyzeFile(req.Path)
	if err != nil {
		SendAnalysisError(c, err)
		return
	}

	analysisID := uuid.New().String()

	api.mu.Lock()
	api.matches = matches
	api.analysisID = analysisID
	api.mu.Unlock()

	log.Printf("Analysis %s: %d matching projects in %s", analysisID, len(matches), req.Path)

	counts := map[string]int{}
	for i := range matches {
		counts[api.taxonomy.Thresholds.Priority(matches[i].Score)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis_id":   analysisID,
		"total_matches": len(matches),
		"high":          counts[config.PriorityHigh],
		"medium":        counts[config.PriorityMedium],
		"low":           counts[config.PriorityLow],
	})
}

// matchView augments a match with its derived priority and title for display.
type matchView struct {
	model.ProjectMatch
	Priority string `json:"priority"`
	Title    string `json:"title"`
}

// ListMatchesHandler returns the current analysis result.
func (api *API) ListMatchesHandler(c *gin.Context) {
	matches, analysisID, ok := api.session()
	if !ok {
		SendNoAnalysisError(c)
		return
	}

	views := make([]matchView, 0, len(matches))
	for i := range matches {
		views = append(views, matchView{
			ProjectMatch: matches[i],
			Priority:     api.taxonomy.Thresholds.Priority(matches[i].Score),
			Title:        matches[i].Title(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis_id": analysisID,
		"total":       len(views),
		"matches":     views,
	})
}

// CrossMatchHandler cross-references one match (by its position in the current
// result list) against the cluster collection.
func (api *API) CrossMatchHandler(c *gin.Context) {
	matches, _, ok := api.session()
	if !ok {
		SendNoAnalysisError(c)
		return
	}

	indexParam := c.Param("index")
	index, err := strconv.Atoi(indexParam)
	if err != nil || index < 0 || index >= len(matches) {
		SendMatchNotFoundError(c, indexParam)
		return
	}

	c.JSON(http.StatusOK, api.matcher.Match(&matches[index]))
}

// CrossMatchAllHandler cross-references the whole current analysis.
func (api *API) CrossMatchAllHandler(c *gin.Context) {
	matches, _, ok := api.session()
	if !ok {
		SendNoAnalysisError(c)
		return
	}

	c.JSON(http.StatusOK, api.matcher.MatchAll(matches))
}

// ListClustersHandler returns the loaded cluster documents.
func (api *API) ListClustersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"documents": api.clusters.Documents()})
}

// ReloadClustersHandler rescans the clusters directory, replacing the loaded
// collection.
func (api *API) ReloadClustersHandler(c *gin.Context) {
	if err := api.clusters.Load(); err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeReloadFailed,
			"Failed to reload cluster documents: "+err.Error())
		return
	}

	stats := api.clusters.Stats()
	c.JSON(http.StatusOK, gin.H{
		"message":         "Cluster documents reloaded",
		"total_documents": stats.TotalDocuments,
		"total_projects":  stats.TotalProjects,
	})
}

// ClusterStatsHandler returns aggregate collection statistics.
func (api *API) ClusterStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.clusters.Stats())
}

// SearchClustersHandler searches cluster projects for comma-separated keywords.
func (api *API) SearchClustersHandler(c *gin.Context) {
	query := c.Query("keywords")
	if strings.TrimSpace(query) == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Query parameter 'keywords' is required")
		return
	}

	var keywords []string
	for _, kw := range strings.Split(query, ",") {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}

	results := api.clusters.SearchByKeywords(keywords)
	c.JSON(http.StatusOK, gin.H{
		"keywords": keywords,
		"total":    len(results),
		"results":  results,
	})
}

// GetClusterProjectHandler looks a cluster project up by its code.
func (api *API) GetClusterProjectHandler(c *gin.Context) {
	code := c.Param("code")

	project, err := api.clusters.FindByCode(code)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			SendProjectNotFoundError(c, code)
			return
		}
		SendInternalError(c, "cluster lookup", err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ExportCSVHandler downloads the current analysis as CSV.
func (api *API) ExportCSVHandler(c *gin.Context) {
	matches, _, ok := api.session()
	if !ok {
		SendNoAnalysisError(c)
		return
	}

	data, err := export.ToCSV(matches, api.taxonomy.Thresholds)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeExportFailed, "CSV export failed: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="matches.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportJSONHandler downloads the current analysis as JSON.
func (api *API) ExportJSONHandler(c *gin.Context) {
	matches, _, ok := api.session()
	if !ok {
		SendNoAnalysisError(c)
		return
	}

	data, err := export.ToJSON(matches, api.taxonomy.Thresholds)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeExportFailed, "JSON export failed: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="matches.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// session snapshots the current analysis under the read lock. The third return
// is false when no analysis has run yet.
func (api *API) session() ([]model.ProjectMatch, string, bool) {
	api.mu.RLock()
	defer api.mu.RUnlock()
	if api.analysisID == "" {
		return nil, "", false
	}
	return api.matches, api.analysisID, true
}
