// Where: internal/infra/ui/ui.go
// What: UserInterface abstraction for workflow output.
// Why: Give workflows a small output surface that tests can record.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by workflows.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, items []string)
}

// NewConsoleUI returns a UserInterface writing to out. With emoji disabled,
// warnings and successes are tagged [warn] and [ok] instead.
func NewConsoleUI(out io.Writer, emoji bool) UserInterface {
	return console{out: out, emoji: emoji}
}
