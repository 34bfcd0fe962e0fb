package models

// PlannedEvent is an event planned by an event manager. The manager
// reference is set at creation and never reassigned by updates.
type PlannedEvent struct {
	ID             int    `json:"id"`
	EventManagerID int    `json:"event_manager_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location"`
	Date           Date   `json:"date"`
}
