// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interview

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// defaultSystemInstruction frames the interviewer persona. Injected into the
// history as the System entry before the opening question.
const defaultSystemInstruction = "You are an expert Product Manager using the 'Jobs to be Done' (JTBD) framework " +
	"and '5 Whys' technique. Your goal is to interview a user to uncover the underlying " +
	"'Job' they are hiring the product to do. You must ask deep, probing 'Why' questions " +
	"to get to the root cause. Do not settle for superficial answers. Start by asking " +
	"about the product idea or problem. Then, recursively ask 'Why' to understand the " +
	"motivation, context, and desired outcome."

// defaultOpeningQuestion starts every interview.
const defaultOpeningQuestion = "To start, what is the product idea or the problem you are trying to solve?"

// defaultRounds is the number of probing rounds after the opening question.
const defaultRounds = 5

// defaultExitKeywords end the interview early when entered as an answer.
var defaultExitKeywords = []string{"exit", "quit", "done"}

// Script is the on-disk representation of a customized interview. Any field
// left empty in the file keeps its built-in default, so a script can override
// just the opening question or just the round count.
type Script struct {
	SystemInstruction string   `yaml:"system_instruction,omitempty"`
	OpeningQuestion   string   `yaml:"opening_question,omitempty"`
	Rounds            int      `yaml:"rounds,omitempty"`
	ExitKeywords      []string `yaml:"exit_keywords,omitempty"`
}

// DefaultScript returns the built-in 5 Whys interview script.
func DefaultScript() Script {
	return Script{
		SystemInstruction: defaultSystemInstruction,
		OpeningQuestion:   defaultOpeningQuestion,
		Rounds:            defaultRounds,
		ExitKeywords:      defaultExitKeywords,
	}
}

// LoadScript reads a YAML script file and fills unset fields with defaults.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading script file: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parsing script file %s: %w", path, err)
	}
	return s.withDefaults(), nil
}

// withDefaults returns a copy of s with empty fields replaced by defaults.
func (s Script) withDefaults() Script {
	out := s
	if out.SystemInstruction == "" {
		out.SystemInstruction = defaultSystemInstruction
	}
	if out.OpeningQuestion == "" {
		out.OpeningQuestion = defaultOpeningQuestion
	}
	if out.Rounds <= 0 {
		out.Rounds = defaultRounds
	}
	if len(out.ExitKeywords) == 0 {
		out.ExitKeywords = defaultExitKeywords
	}
	return out
}

// IsExit reports whether answer matches one of the script's exit keywords,
// ignoring case and surrounding whitespace.
func (s Script) IsExit(answer string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(answer))
	for _, kw := range s.ExitKeywords {
		if trimmed == strings.ToLower(kw) {
			return true
		}
	}
	return false
}
