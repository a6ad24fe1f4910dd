// internal/models/import.go
package models

import "time"

// ImportRun records one dataset load, kept for auditing reloads.
type ImportRun struct {
	RunID      string    `bson:"run_id" json:"run_id"`
	SourceFile string    `bson:"source_file" json:"source_file"`
	Total      int       `bson:"total" json:"total"`
	Cities     []string  `bson:"cities" json:"cities"`
	ImportedAt time.Time `bson:"imported_at" json:"imported_at"`
}
