package entities

import "time"

// Audit actions recorded by the catalog.
const (
	AuditAdd     = "add"
	AuditReplace = "replace"
	AuditRemove  = "remove"
)

// AuditEntry represents a logged catalog action.
type AuditEntry struct {
	ID        int64          `json:"id"`
	Action    string         `json:"action"`
	ListingID string         `json:"listing_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
