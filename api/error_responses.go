package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON     ErrorCode = "INVALID_JSON"
	ErrorCodeNoAnalysis      ErrorCode = "NO_ANALYSIS"
	ErrorCodeMatchNotFound   ErrorCode = "MATCH_NOT_FOUND"
	ErrorCodeProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"

	// Server Error Codes (5xx)
	ErrorCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrorCodeAnalysisFailed ErrorCode = "ANALYSIS_FAILED"
	ErrorCodeReloadFailed   ErrorCode = "RELOAD_FAILED"
	ErrorCodeExportFailed   ErrorCode = "EXPORT_FAILED"
)

// APIError represents a standardized API error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	errorResponse := &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}

	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendNoAnalysisError sends the error returned when results are requested
// before any workbook has been analyzed
func SendNoAnalysisError(c *gin.Context) {
	SendError(c, http.StatusConflict, ErrorCodeNoAnalysis,
		"No analysis available: analyze a workbook first")
}

// SendMatchNotFoundError sends a standardized match not found error
func SendMatchNotFoundError(c *gin.Context, index string) {
	SendError(c, http.StatusNotFound, ErrorCodeMatchNotFound,
		"Match '"+index+"' not found in the current analysis")
}

// SendProjectNotFoundError sends a standardized cluster project not found error
func SendProjectNotFoundError(c *gin.Context, code string) {
	SendError(c, http.StatusNotFound, ErrorCodeProjectNotFound,
		"Cluster project '"+code+"' not found")
}

// SendAnalysisError sends a standardized analysis failure error
func SendAnalysisError(c *gin.Context, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeAnalysisFailed,
		"Analysis failed: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}
