// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prd

import (
	"bytes"
	"fmt"
	"text/template"
)

// generationPromptTmpl is the single-shot prompt that turns the interview
// transcript into a PRD. The eight numbered requirements shape the document;
// the output structure is enforced only by the prompt, never by the program.
var generationPromptTmpl = template.Must(template.New("generation").Parse(`Based on the following interview transcript, write a comprehensive Product Requirements Document (PRD) in Markdown format.

TRANSCRIPT:
{{.Transcript}}

REQUIREMENTS:
1. Title & Overview
2. Problem Statement (Root Cause Analysis)
3. Goals & Success Metrics
4. User Personas
5. User Stories
6. Functional Requirements
7. Non-functional Requirements
8. Output strictly in Markdown.
`))

// renderPrompt executes the generation prompt template with the transcript.
func renderPrompt(transcript string) (string, error) {
	var buf bytes.Buffer
	if err := generationPromptTmpl.Execute(&buf, struct{ Transcript string }{Transcript: transcript}); err != nil {
		return "", fmt.Errorf("rendering generation prompt: %w", err)
	}
	return buf.String(), nil
}
