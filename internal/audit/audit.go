package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Entry is one accepted write request as written to disk.
type Entry struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	ReceivedAt time.Time `json:"received_at"`
	Payload    any       `json:"payload"`
}

type Auditor struct {
	AuditDir string
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

// Enabled reports whether entries are written at all.
func (a *Auditor) Enabled() bool {
	return a != nil && a.AuditDir != ""
}

// Record saves payload under operation to a file named with a UUID4 and
// returns the file name. A disabled auditor records nothing.
func (a *Auditor) Record(operation string, payload any) (string, error) {
	if !a.Enabled() {
		return "", nil
	}

	if err := a.ensureAuditDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	auditID := uuid.New()
	filename := fmt.Sprintf("%s.json", auditID.String())
	path := filepath.Join(a.AuditDir, filename)

	jsonData, err := json.MarshalIndent(Entry{
		ID:         auditID.String(),
		Operation:  operation,
		ReceivedAt: time.Now().UTC(),
		Payload:    payload,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	log.Debug().Str("operation", operation).Str("file", path).Msg("Saved audit entry")
	return filename, nil
}

// RecordQuietly is Record for callers that must not fail on audit errors.
func (a *Auditor) RecordQuietly(operation string, payload any) {
	if _, err := a.Record(operation, payload); err != nil {
		log.Warn().Err(err).Str("operation", operation).Msg("Failed to save audit entry")
	}
}

func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
