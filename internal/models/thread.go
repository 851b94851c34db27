package models

// ConversationThread is one conversation attached to the global thread list,
// optionally back-referencing the radar it was opened for. The back-reference
// is a relation only; deleting a radar does not delete its threads.
type ConversationThread struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	RadarID string `json:"radarId,omitempty"`
}
