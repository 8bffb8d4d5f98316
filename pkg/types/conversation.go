// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Conversation roles for generation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in the generation conversation.
type Turn struct {
	// Role is RoleUser or RoleAssistant.
	Role string `json:"role" yaml:"role"`

	// Content is the message text.
	Content string `json:"content" yaml:"content"`
}
