// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure the connection used by the database-backed
// catalog source. MySQL is the production driver; sqlite (including
// ":memory:") covers local setups and tests.
//
// # Schema Inspection
//
// GetTableColumns retrieves table columns so the integrity feature can
// verify the catalog_records table against the expected record schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "catalog_records")
package database
