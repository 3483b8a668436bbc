// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console provides colored line-based prompt I/O for the interview.
// Reader and writer are injectable so tests can script a whole session.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console wraps a line reader and an output writer with the color palette
// used throughout the interview.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	banner  *color.Color
	agent   *color.Color
	you     *color.Color
	notice  *color.Color
	success *color.Color
	failure *color.Color
}

// New returns a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		banner:  color.New(color.FgCyan),
		agent:   color.New(color.FgBlue),
		you:     color.New(color.FgYellow),
		notice:  color.New(color.FgMagenta),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Banner prints a cyan section heading.
func (c *Console) Banner(text string) {
	c.banner.Fprintln(c.out, text)
}

// Say prints plain introductory text.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Agent prints an agent utterance with a colored label, e.g. "Agent (2/5): ".
func (c *Console) Agent(label, text string) {
	c.agent.Fprint(c.out, label)
	fmt.Fprintln(c.out, text)
}

// ReadLine prints the yellow "You: " prompt and reads one line of input,
// trimmed of surrounding whitespace. A final unterminated line is still
// returned before io.EOF is reported on the next call.
func (c *Console) ReadLine() (string, error) {
	c.you.Fprint(c.out, "You: ")

	text, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && text != "" {
			return strings.TrimSpace(text), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Notice prints a magenta status line.
func (c *Console) Notice(format string, args ...any) {
	c.notice.Fprintf(c.out, format+"\n", args...)
}

// Success prints a green status line.
func (c *Console) Success(format string, args ...any) {
	c.success.Fprintf(c.out, format+"\n", args...)
}

// Errorf prints a red error line.
func (c *Console) Errorf(format string, args ...any) {
	c.failure.Fprintf(c.out, format+"\n", args...)
}
