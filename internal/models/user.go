package models

// GeneralUser is a platform user who can register for planned events.
type GeneralUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EventManager is a user who additionally plans events. Managers live in
// their own collection; only display names are shared with general users
// (the combined namespace is name-unique, ids are not cross-checked).
type EventManager struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
