// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/prd-agent/internal/llm"
)

type stubBackend struct {
	response string
	err      error
	prompt   string
}

func (s *stubBackend) Complete(_ context.Context, history []llm.Message) (string, error) {
	if len(history) > 0 {
		s.prompt = history[len(history)-1].Content
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const sampleTranscript = "System: instruction\nAgent: question\nUser: answer"

func TestRenderPromptEmbedsTranscriptAndSections(t *testing.T) {
	prompt, err := renderPrompt(sampleTranscript)
	require.NoError(t, err)

	assert.Contains(t, prompt, sampleTranscript)
	for _, section := range []string{
		"Title & Overview",
		"Problem Statement (Root Cause Analysis)",
		"Goals & Success Metrics",
		"User Personas",
		"User Stories",
		"Functional Requirements",
		"Non-functional Requirements",
		"Output strictly in Markdown.",
	} {
		assert.Contains(t, prompt, section)
	}
}

func TestGenerate(t *testing.T) {
	backend := &stubBackend{response: "# Meal Planner\n\nA PRD body.\n"}

	doc, err := Generate(context.Background(), backend, sampleTranscript)
	require.NoError(t, err)

	assert.Equal(t, "Meal Planner", doc.Title)
	assert.Equal(t, "# Meal Planner\n\nA PRD body.", doc.Markdown)
	assert.Contains(t, backend.prompt, sampleTranscript)
}

func TestGenerateEmptyResponse(t *testing.T) {
	backend := &stubBackend{response: "   \n"}

	_, err := Generate(context.Background(), backend, sampleTranscript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestGenerateBackendError(t *testing.T) {
	backend := &stubBackend{err: fmt.Errorf("boom")}

	_, err := Generate(context.Background(), backend, sampleTranscript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating document")
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"heading first", "# My Product\n\nBody.", "My Product"},
		{"heading after preamble", "Preamble.\n\n# Late Title\n", "Late Title"},
		{"padded heading", "#   Spaced Out   \n", "Spaced Out"},
		{"no heading", "Just prose, no heading.", fallbackTitle},
		{"subheading only", "## Not a Title\n", fallbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTitle(tt.markdown))
		})
	}
}

func TestSaveWritesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PRD.md")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	doc := Document{Title: "T", Markdown: "# T\n\nFresh content."}
	require.NoError(t, Save(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Markdown, string(data))
	assert.NotEmpty(t, data)
}

func TestSaveFailureReportsPath(t *testing.T) {
	doc := Document{Markdown: "# T"}
	err := Save(doc, filepath.Join(t.TempDir(), "missing", "PRD.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing document")
}

func TestSaveHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PRD.md.html")
	doc := Document{Markdown: "# Title\n\nSome *emphasis*."}

	require.NoError(t, SaveHTML(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Title</h1>")
	assert.Contains(t, string(data), "<em>emphasis</em>")
}
