package main

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/waitinglist/internal/database"
	"github.com/localnerve/waitinglist/internal/logger"
	"gorm.io/gorm"
)

func main() {
	db, err := database.Open(sqlite.Open(":memory:"), logger.New("warn", true))
	if err != nil {
		log.Fatal(err)
	}

	// Migrate to see what gorm creates for the waiting list models
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		printSQL(db, "SELECT sql FROM sqlite_master WHERE type='table' AND name = ?", table)

		var indexes []string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name = ? AND sql IS NOT NULL", table).Scan(&indexes)
		for _, idx := range indexes {
			fmt.Println(idx)
		}
	}
}

func printSQL(db *gorm.DB, query string, args ...any) {
	var schema string
	db.Raw(query, args...).Scan(&schema)
	fmt.Println(schema)
}
