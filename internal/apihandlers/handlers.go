// Package apihandlers exposes the analysis pipeline over HTTP for the voice
// memo frontend and other clients.
package apihandlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"memofiler/internal/app"
	"memofiler/internal/models"
	"memofiler/internal/services"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

// AnalyzeRequest is the JSON body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	Content string `json:"content"`
	// Action selects what happens with the result: "preview" (default)
	// returns the analysis, "save" also writes the note into the vault.
	Action   string                   `json:"action,omitempty"`
	Override *models.AnalysisOverride `json:"override,omitempty"`
}

func (h *APIHandler) AnalyzeHandler(c *gin.Context) {
	req, err := parseAnalyzeRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	params := services.AnalyzeParams{Content: req.Content, Override: req.Override}

	switch req.Action {
	case "", "preview":
		result := h.App.MemoService.Analyze(c.Request.Context(), params)
		c.JSON(http.StatusOK, gin.H{"data": result})
	case "save":
		result, path, err := h.App.MemoService.Save(c.Request.Context(), params)
		if err != nil {
			Internal(c, fmt.Sprintf("AnalyzeHandler: failed to save memo: %v", err))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": result, "path": path})
	default:
		BadRequest(c, fmt.Sprintf("unknown action %q (preview, save)", req.Action))
	}
}

// QuickAnalyzeHandler skips the vault scan, returning category, title, tags
// and summary only. Used by clients that need a fast response while typing.
func (h *APIHandler) QuickAnalyzeHandler(c *gin.Context) {
	req, err := parseAnalyzeRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result := h.App.MemoService.Analyze(c.Request.Context(), services.AnalyzeParams{
		Content:       req.Content,
		Override:      req.Override,
		SkipRelations: true,
	})
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (h *APIHandler) ListHistoryHandler(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			BadRequest(c, "Invalid query parameters: limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.App.MemoService.ListHistory(c.Request.Context(), limit)
	if err != nil {
		Internal(c, fmt.Sprintf("ListHistoryHandler: failed to list history: %v", err))
		return
	}
	if records == nil {
		records = []*models.AnalysisRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (h *APIHandler) HealthHandler(c *gin.Context) {
	if err := h.App.History.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "history": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseAnalyzeRequest(c *gin.Context) (AnalyzeRequest, error) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.Content == "" {
		return req, fmt.Errorf("missing required field: content")
	}
	return req, nil
}
