package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/catalog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupCatalogTestDB(t *testing.T) (*database.Database, *catalog.Repository) {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, catalog.NewRepository(db.DB)
}

func setupRouter(t *testing.T, auditor *audit.Auditor) (*gin.Engine, *catalog.Repository) {
	t.Helper()
	db, repo := setupCatalogTestDB(t)
	router := NewRouter(RouterConfig{
		Store:    repo,
		Database: db,
		Auditor:  auditor,
		Version:  "test",
	})
	return router, repo
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
