package config

const (
	// DefaultDatabaseName is the PostgreSQL database used when DB_NAME is not set
	DefaultDatabaseName = "catalog"

	// DefaultDatabasePath is the SQLite file used when DB_DRIVER=sqlite
	DefaultDatabasePath = "./catalog.db"

	// MaintenanceDatabase is the PostgreSQL database used to drop and create the catalog database
	MaintenanceDatabase = "postgres"
)
