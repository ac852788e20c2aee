package models

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// JobDescription is the target position a candidate is preparing for.
type JobDescription struct {
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}
