package models

import "time"

// Document is a single whole-document row in the key-value store. The value
// is the JSON serialization of one top-level document (category list, user
// map, or session marker) and is always rewritten in full.
type Document struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
