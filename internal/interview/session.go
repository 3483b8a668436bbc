// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interview runs the 5 Whys question loop and owns the conversation
// history it produces.
package interview

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/prd-agent/internal/console"
	"github.com/pdiddy/prd-agent/internal/llm"
)

// questionPromptTmpl instructs the model to produce the next probing "why"
// question given the user's latest answer. Sent as an ephemeral user message
// on top of the full history; the rendered prompt itself never enters the
// transcript.
var questionPromptTmpl = template.Must(template.New("question").Parse(
	`The user just said: '{{.Answer}}'. Previous conversation context is implied. ` +
		`Ask a specific 'Why' question to dig deeper into the user's motivation or the root problem. ` +
		`Use the '5 Whys' technique. ` +
		`Example: 'Why is that important to you?' or 'Why does this problem occur?' ` +
		`Ensure the question relates to the 'Job to be Done'.`))

// Session holds one interview's state: the script, the console, the backend,
// and the append-only history. Single-threaded; a Session is not reused.
type Session struct {
	backend   llm.Backend
	console   *console.Console
	script    Script
	history   []llm.Message
	completed int
}

// NewSession returns a session ready to run.
func NewSession(backend llm.Backend, con *console.Console, script Script) *Session {
	return &Session{
		backend: backend,
		console: con,
		script:  script.withDefaults(),
	}
}

// Run conducts the interview: opening question, then up to script.Rounds
// generated "why" rounds. An exit keyword ends the loop after that round.
// Backend and input errors abort the session and propagate to the caller.
func (s *Session) Run(ctx context.Context) error {
	s.console.Banner("\n=== Product Manager Agent ===")
	s.console.Success("Hello! I'm here to help you define your product requirements.")
	s.console.Say("I'll ask you a few questions to understand the root problem better.\n")

	s.append(llm.RoleSystem, s.script.SystemInstruction)

	s.console.Agent("Agent: ", s.script.OpeningQuestion)
	s.append(llm.RoleAgent, s.script.OpeningQuestion)

	answer, err := s.console.ReadLine()
	if err != nil {
		return err
	}
	s.append(llm.RoleUser, answer)

	for i := 1; i <= s.script.Rounds; i++ {
		question, err := s.nextQuestion(ctx, answer)
		if err != nil {
			return fmt.Errorf("generating question %d: %w", i, err)
		}

		s.console.Agent(fmt.Sprintf("Agent (%d/%d): ", i, s.script.Rounds), question)
		s.append(llm.RoleAgent, question)

		answer, err = s.console.ReadLine()
		if err != nil {
			return err
		}
		s.append(llm.RoleUser, answer)
		s.completed++

		if s.script.IsExit(answer) {
			s.console.Notice("Ending interview early...")
			break
		}
	}

	return nil
}

// nextQuestion asks the backend for the next probing question. The rendered
// prompt rides along as an extra user message so the stored history stays a
// clean transcript.
func (s *Session) nextQuestion(ctx context.Context, lastAnswer string) (string, error) {
	var buf bytes.Buffer
	if err := questionPromptTmpl.Execute(&buf, struct{ Answer string }{Answer: lastAnswer}); err != nil {
		return "", fmt.Errorf("rendering question prompt: %w", err)
	}

	messages := make([]llm.Message, len(s.history), len(s.history)+1)
	copy(messages, s.history)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: buf.String()})

	text, err := s.backend.Complete(ctx, messages)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *Session) append(role llm.Role, content string) {
	s.history = append(s.history, llm.Message{Role: role, Content: content})
}

// History returns the accumulated conversation history.
func (s *Session) History() []llm.Message {
	return s.history
}

// CompletedRounds returns the number of finished question/answer rounds,
// not counting the opening exchange.
func (s *Session) CompletedRounds() int {
	return s.completed
}

// Transcript renders the history as newline-joined "Role: content" lines for
// embedding into the document generation prompt.
func (s *Session) Transcript() string {
	lines := make([]string, len(s.history))
	for i, msg := range s.history {
		lines[i] = msg.Label()
	}
	return strings.Join(lines, "\n")
}
