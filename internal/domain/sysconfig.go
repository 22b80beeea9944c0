package domain

import "time"

// ConfigEntry is a key/value pair of the admin-managed system configuration.
type ConfigEntry struct {
	Key       string
	Value     string
	UpdatedBy int64
	UpdatedAt time.Time
}
