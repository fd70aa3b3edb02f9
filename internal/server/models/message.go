package models

// Message roles in the chat transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the session transcript. Messages are immutable
// once appended; ordering is append order and is the only ordering
// guarantee. Model is set only on assistant messages and carries the
// logical model tag the reply came from.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Model   string `json:"model,omitempty"`
}
