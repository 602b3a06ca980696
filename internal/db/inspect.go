package db

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
)

type Report struct {
	Tables []string         `json:"tabelas"`
	Counts map[string]int64 `json:"contagens"`
}

// Inspect lists the tables of the store with their row counts.
func Inspect(db *gorm.DB) (*Report, error) {
	tables, err := db.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	sort.Strings(tables)

	report := &Report{Tables: tables, Counts: make(map[string]int64, len(tables))}
	for _, table := range tables {
		var n int64
		if err := db.Table(table).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		report.Counts[table] = n
	}
	return report, nil
}
