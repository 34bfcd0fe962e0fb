package models

// Registration links one participant to one planned event. The participant
// id may belong to either user namespace (general user or event manager);
// no record is kept of which one it resolved from. References are immutable
// after creation.
type Registration struct {
	ID             int `json:"id"`
	PlannedEventID int `json:"planned_event_id"`
	ParticipantID  int `json:"participant_id"`
}
