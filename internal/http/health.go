package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	checkOK            = "ok"
	checkSkipped       = "skipped"
	checkNotConfigured = "not configured"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// StoreProbe is satisfied by *database.Database.
type StoreProbe interface {
	Ping() error
	MissingTables() []string
}

// HealthController reports whether the catalog store is reachable and
// has its authors and books tables.
type HealthController struct {
	store   StoreProbe
	version string
}

func NewHealthController(store StoreProbe, version string) *HealthController {
	return &HealthController{store: store, version: version}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := h.runChecks()

	status := "healthy"
	for _, result := range checks {
		if result != checkOK && result != checkNotConfigured {
			status = "unhealthy"
			break
		}
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	c.IndentedJSON(code, HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	})
}

func (h *HealthController) runChecks() map[string]string {
	if h.store == nil {
		return map[string]string{
			"database": checkNotConfigured,
			"tables":   checkNotConfigured,
		}
	}

	if err := h.store.Ping(); err != nil {
		return map[string]string{
			"database": "error: " + err.Error(),
			"tables":   checkSkipped,
		}
	}

	tables := checkOK
	if missing := h.store.MissingTables(); len(missing) > 0 {
		tables = "missing: " + strings.Join(missing, ", ")
	}
	return map[string]string{
		"database": checkOK,
		"tables":   tables,
	}
}
