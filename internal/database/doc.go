// Package database owns the connection to the relational store.
//
// # Layout
//
//	database/
//	├── database.go   # Connection setup, database and table rebuild
//	└── catalog/      # Author and book data access
//
// # Drivers
//
// PostgreSQL is the production store. SQLite is supported for local runs
// and is what the test suites use:
//
//	db, err := database.NewDatabase(config.Database{
//		Driver: config.DriverSQLite,
//		Path:   "./catalog.db",
//	})
//
//	repo := catalog.NewRepository(db.DB)
//	author, err := repo.GetAuthorInfo("Kuja")
//
// # Rebuild
//
// With Rebuild set the target database is dropped and created again
// (for SQLite, the file is removed) and the authors and books tables
// are created empty. Without it, missing tables are created and data is
// kept.
package database
