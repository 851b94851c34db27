package models

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a conversation history.
type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Briefing is the short server-generated summary plus a free-text scenario
// hint fetched when a radar workspace is opened.
type Briefing struct {
	Summary  string `json:"summary"`
	Scenario string `json:"scenario,omitempty"`
}

// Scenario hints. The upstream also emits other values ("unviewed" among
// them); anything other than exactly ScenarioResuming resolves as a fresh
// start.
const (
	ScenarioNew      = "new"
	ScenarioResuming = "resuming"
)

// SessionHistory is the payload of the session-loading delegate: full
// message history plus the session-scoped document list.
type SessionHistory struct {
	Messages  []Message           `json:"messages"`
	Documents []ProjectedDocument `json:"documents,omitempty"`
}

// WorkspaceState is what the presentation layer renders after a radar
// workspace has been opened.
type WorkspaceState struct {
	RadarID   string               `json:"radarId"`
	SessionID string               `json:"sessionId"`
	Resumed   bool                 `json:"resumed"`
	Messages  []Message            `json:"messages"`
	Threads   []ConversationThread `json:"threads"`
	Documents []ProjectedDocument  `json:"documents,omitempty"`
}
