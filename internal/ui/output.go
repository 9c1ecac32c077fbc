// Package ui prints colored status lines for the ibcheck CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const lineWidth = 60

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	stepColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Out is where status lines are written. Tests may swap it.
var Out io.Writer = os.Stdout

// Header prints a centered title between rules.
func Header(text string) {
	rule := strings.Repeat("=", lineWidth)
	headerColor.Fprintln(Out, rule)
	headerColor.Fprintln(Out, center(text, lineWidth))
	headerColor.Fprintln(Out, rule)
}

// Step prints "[n/total] text".
func Step(n, total int, text string) {
	stepColor.Fprintf(Out, "[%d/%d] ", n, total)
	fmt.Fprintln(Out, text)
}

// Success prints a passing line.
func Success(text string) {
	successColor.Fprintln(Out, "✓ "+text)
}

// Info prints a plain line.
func Info(text string) {
	fmt.Fprintln(Out, "  "+text)
}

// Warning prints a warning line.
func Warning(text string) {
	warningColor.Fprintln(Out, "! "+text)
}

// Error prints a failing line.
func Error(text string) {
	errorColor.Fprintln(Out, "✗ "+text)
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}
