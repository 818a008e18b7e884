package schema

import "time"

// CacheStatus describes the state of the durable snapshot cache.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int64     `json:"total_entries"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	LastEntryTime   time.Time `json:"last_entry_time"`
}
