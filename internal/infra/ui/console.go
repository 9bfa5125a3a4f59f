// Where: internal/infra/ui/console.go
// What: Console-backed UserInterface.
// Why: Render status lines, key/value blocks and lists the same way in every step.
package ui

import (
	"fmt"
	"io"
	"strings"
)

const indent = "   "

// console writes plain lines, falling back to bracketed tags when emoji
// output is disabled.
type console struct {
	out   io.Writer
	emoji bool
}

func (c console) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c console) Warn(msg string) {
	fmt.Fprintf(c.out, "%s%s\n", c.prefix("⚠️", "[warn]"), msg)
}

func (c console) Success(msg string) {
	fmt.Fprintf(c.out, "%s%s\n", c.prefix("✅", "[ok]"), msg)
}

// Block prints a titled block whose values line up after the longest key.
func (c console) Block(emoji, title string, rows []KeyValue) {
	c.header(emoji, title)
	width := 0
	for _, kv := range rows {
		width = max(width, len(kv.Key)+1)
	}
	for _, kv := range rows {
		fmt.Fprintf(c.out, "%s%-*s %v\n", indent, width, kv.Key+":", kv.Value)
	}
	fmt.Fprintln(c.out)
}

func (c console) List(emoji, title string, items []string) {
	c.header(emoji, title)
	for _, item := range items {
		fmt.Fprintf(c.out, "%s- %s\n", indent, item)
	}
	fmt.Fprintln(c.out)
}

func (c console) header(emoji, title string) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%s%s\n", c.prefix(emoji, ""), title)
}

func (c console) prefix(emoji, fallback string) string {
	mark := fallback
	if c.emoji && strings.TrimSpace(emoji) != "" {
		mark = emoji
	}
	if mark == "" {
		return ""
	}
	return mark + " "
}
