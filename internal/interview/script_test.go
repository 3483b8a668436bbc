// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScript(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s Script)
		errMsg  string
	}{
		{
			name: "full override",
			content: `system_instruction: Interview like a journalist.
opening_question: What are you building?
rounds: 3
exit_keywords: [stop, enough]
`,
			check: func(t *testing.T, s Script) {
				assert.Equal(t, "Interview like a journalist.", s.SystemInstruction)
				assert.Equal(t, "What are you building?", s.OpeningQuestion)
				assert.Equal(t, 3, s.Rounds)
				assert.Equal(t, []string{"stop", "enough"}, s.ExitKeywords)
			},
		},
		{
			name:    "partial override keeps defaults",
			content: "rounds: 2\n",
			check: func(t *testing.T, s Script) {
				assert.Equal(t, 2, s.Rounds)
				assert.Equal(t, defaultOpeningQuestion, s.OpeningQuestion)
				assert.Equal(t, defaultSystemInstruction, s.SystemInstruction)
				assert.Equal(t, defaultExitKeywords, s.ExitKeywords)
			},
		},
		{
			name:    "empty file yields defaults",
			content: "",
			check: func(t *testing.T, s Script) {
				assert.Equal(t, DefaultScript(), s)
			},
		},
		{
			name:    "invalid yaml",
			content: "rounds: [not a number\n",
			errMsg:  "parsing script file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "script.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			s, err := LoadScript(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	_, err := LoadScript(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading script file")
}

func TestScriptIsExit(t *testing.T) {
	script := DefaultScript()

	tests := []struct {
		answer string
		want   bool
	}{
		{"exit", true},
		{"EXIT", true},
		{"Quit", true},
		{"done", true},
		{"  DONE  ", true},
		{"exited", false},
		{"keep going", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, script.IsExit(tt.answer))
		})
	}
}
