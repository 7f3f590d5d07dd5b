package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"solparse/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error ErrorLevel = "error"
	Note  ErrorLevel = "note"
	Help  ErrorLevel = "help"
)

// CompilerError is a located diagnostic with optional suggestions
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0401
	Message     string       // Primary message
	Position    ast.Position // Location in source
	Length      int          // Length of the offending region
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion is a suggested fix
type Suggestion struct {
	Message     string
	Replacement string // optional
}

// Category returns the error category derived from the code
func (e CompilerError) Category() string {
	return GetErrorCategory(e.Code)
}

// ErrorReporter renders diagnostics against one source file
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders a diagnostic with a source excerpt and caret marker:
//
//	error[E0405]: Receive Ether functions have to be declared "payable"
//	    --> Token.sol:3:5
//	     │
//	   3 │     receive() external {}
//	     │     ^^^^^^^
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	levelColor := er.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	level := err.Level
	if level == "" {
		level = Error
	}
	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(level)), err.Message)
	}

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	gutter := dim("│")

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, gutter)

	line := err.Position.Line
	if line > 1 && line-1 <= len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), gutter, er.lines[line-2])
	}
	if line > 0 && line <= len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), gutter, er.lines[line-1])
		fmt.Fprintf(&b, "%s %s %s\n", indent, gutter, er.createMarker(err.Position.Column, err.Length, level))
	}
	if line > 0 && line < len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), gutter, er.lines[line])
	}

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(&b, "%s %s\n", indent, gutter)
		for i, s := range err.Suggestions {
			if i == 0 {
				fmt.Fprintf(&b, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), s.Message)
			} else {
				fmt.Fprintf(&b, "%s     %s\n", indent, s.Message)
			}
			if s.Replacement != "" {
				replacement := strings.ReplaceAll(s.Replacement, "\n", "\n"+indent+" "+gutter+" ")
				fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("│"), cyan(replacement))
			}
		}
	}

	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, color.New(color.FgBlue).Sprint("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, color.New(color.FgGreen).Sprint("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker builds the caret underline for a 1-based column
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + er.levelColor(level)(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	return max(3, len(strconv.Itoa(line)))
}
