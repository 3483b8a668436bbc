// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the chat completion API used for interview questions
// and document generation.
package llm

import (
	"context"
	"fmt"
)

// Role identifies the speaker of a transcript message.
type Role string

const (
	// RoleSystem carries the interviewer persona instruction.
	RoleSystem Role = "System"

	// RoleAgent is the interviewing agent. Maps to the API "assistant" role.
	RoleAgent Role = "Agent"

	// RoleUser is the human being interviewed.
	RoleUser Role = "User"
)

// Message is a single labeled entry in a conversation.
type Message struct {
	Role    Role
	Content string
}

// Label renders the message as a "Role: content" transcript line.
func (m Message) Label() string {
	return fmt.Sprintf("%s: %s", m.Role, m.Content)
}

// Backend abstracts the text generation API so tests can supply a mock.
// Implementations send the full message history and return the model's
// text response. Per Strategy pattern.
type Backend interface {
	Complete(ctx context.Context, history []Message) (string, error)
}
