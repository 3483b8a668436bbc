// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prd synthesizes a Product Requirements Document from an interview
// transcript and writes it to disk.
package prd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/prd-agent/internal/llm"
)

// DefaultOutputPath is the file the document is written to unless overridden.
const DefaultOutputPath = "PRD.md"

// fallbackTitle is used when the model output has no top-level heading.
const fallbackTitle = "Product Requirements Document"

// titlePattern matches the first top-level Markdown heading.
var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Document is the generated PRD. Markdown holds the raw model output; Title
// is extracted metadata for display and archiving, nothing more.
type Document struct {
	Title    string
	Markdown string
}

// Generate issues one generation call over the transcript and wraps the raw
// response as a Document. The response is not validated against the requested
// section structure.
func Generate(ctx context.Context, backend llm.Backend, transcript string) (Document, error) {
	prompt, err := renderPrompt(transcript)
	if err != nil {
		return Document{}, err
	}

	raw, err := backend.Complete(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
	if err != nil {
		return Document{}, fmt.Errorf("generating document: %w", err)
	}

	markdown := strings.TrimSpace(raw)
	if markdown == "" {
		return Document{}, errors.New("model returned an empty document")
	}

	return Document{
		Title:    extractTitle(markdown),
		Markdown: markdown,
	}, nil
}

// extractTitle returns the first "# " heading, or fallbackTitle if none.
func extractTitle(markdown string) string {
	if m := titlePattern.FindStringSubmatch(markdown); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return fallbackTitle
}

// Save writes the document Markdown verbatim to path, overwriting any
// existing file.
func Save(doc Document, path string) error {
	if err := os.WriteFile(path, []byte(doc.Markdown), 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// SaveHTML renders the document Markdown to HTML and writes it to path.
func SaveHTML(doc Document, path string) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(doc.Markdown), &buf); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	return nil
}
