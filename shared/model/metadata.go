package model

import "time"

// Metadata carries the row-level audit timestamps shared by every table.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
}
