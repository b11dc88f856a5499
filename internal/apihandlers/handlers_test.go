package apihandlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memofiler/internal/analyzer"
	"memofiler/internal/analyzer/rules"
	"memofiler/internal/app"
	"memofiler/internal/config"
	"memofiler/internal/services"
	"memofiler/internal/store"
	"memofiler/internal/vault"
)

func setupTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	rs := rules.Default()
	pipeline := analyzer.New(rs, nil)
	corpus := vault.NewCorpus(root, 0)
	writer := vault.NewWriter(root, "02_Inbox", rs.FolderFor, nil)
	history := store.NewNoopStore()

	cfg := &config.Config{}
	cfg.Vault.Root = root

	a := &app.App{
		Config:   cfg,
		Rules:    rs,
		Pipeline: pipeline,
		Corpus:   corpus,
		Writer:   writer,
		History:  history,
		MemoService: services.NewMemoService(services.MemoServiceDeps{
			Pipeline: pipeline,
			Corpus:   corpus,
			Writer:   writer,
			History:  history,
		}),
	}

	h := NewAPIHandler(a)
	router := gin.New()
	router.GET("/health", h.HealthHandler)
	v1 := router.Group("/api/v1")
	v1.POST("/analyze", h.AnalyzeHandler)
	v1.POST("/quick-analyze", h.QuickAnalyzeHandler)
	v1.GET("/history", h.ListHistoryHandler)
	return router, root
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeHandler_Preview(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze",
		`{"content": "生徒の読解指導について授業で解説した。過去問の演習も行った。"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Success  bool `json:"success"`
			Category struct {
				Name string `json:"name"`
			} `json:"category"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Success)
	assert.Equal(t, "education", resp.Data.Category.Name)
}

func TestAnalyzeHandler_SaveWritesNote(t *testing.T) {
	router, root := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze",
		`{"content": "ClaudeでAPIの実装を進めた。", "action": "save"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Path)
	assert.FileExists(t, resp.Path)

	rel, err := filepath.Rel(root, resp.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, filepath.Join("02_Inbox", "1_Tech")),
		"note lands in the tech folder, got %s", rel)

	raw, err := os.ReadFile(resp.Path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "category: tech")
}

func TestAnalyzeHandler_Validation(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("empty content", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{"content": ""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "bad_request")
	})

	t.Run("unknown action", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{"content": "x", "action": "explode"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuickAnalyzeHandler_OmitsRelations(t *testing.T) {
	router, root := setupTestRouter(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "02_Inbox"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "02_Inbox", "既存.md"),
		[]byte("読解指導の記録"), 0o644))

	w := doJSON(t, router, http.MethodPost, "/api/v1/quick-analyze",
		`{"content": "読解指導の授業メモ"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Relations struct {
				ScannedCount int `json:"scanned_count"`
			} `json:"relations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.Relations.ScannedCount, "quick analyze never walks the vault")
}

func TestListHistoryHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": []}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}
