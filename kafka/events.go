package kafka

import "time"

// ReagentSavedEvent is emitted after every successful insert or update of
// a reagent record.
type ReagentSavedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ReagentID uint      `json:"reagent_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Location  string    `json:"location,omitempty"`
	Remaining int       `json:"remaining"`
	Status    string    `json:"status"`
	Created   bool      `json:"created"`
	Timestamp time.Time `json:"timestamp"`
}

// ReagentLowEvent is emitted when a save leaves a reagent below the low
// threshold. Consumers alert on it; nothing in the write path depends on
// delivery.
type ReagentLowEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ReagentID uint      `json:"reagent_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Remaining int       `json:"remaining"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeReagentSaved = "reagent.saved"
	EventTypeReagentLow   = "reagent.low"
)

// Kafka topics
const (
	TopicReagentSaved = "reagent-saved"
	TopicReagentLow   = "reagent-low"
)
