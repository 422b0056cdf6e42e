package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/catalog"
	"github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/logging"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.CatalogStore = (*catalog.Repository)(nil)
var _ http.AuthorStore = (*catalog.Repository)(nil)
var _ http.BookStore = (*catalog.Repository)(nil)

// =============================================================================
// Storage Connection
// =============================================================================

var _ http.StoreProbe = (*database.Database)(nil)

// =============================================================================
// Logging
// =============================================================================

var _ logger.Interface = (*logging.GormLogger)(nil)
