// Where: internal/infra/interaction/line.go
// What: Line-oriented prompter for non-terminal stdin.
// Why: Allow scripted runs (`printf ... | projinit`) without a TUI.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter reads one line per answer.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	// listed is the title whose options were printed by the previous call.
	listed string
}

// NewLinePrompter builds a LinePrompter over in and out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Input prints "title: " and returns the line without its trailing newline.
// End of input with nothing typed is returned as io.EOF.
func (p *LinePrompter) Input(title string, suggestions []string) (string, error) {
	prompt := title
	if len(suggestions) > 0 && suggestions[0] != "" {
		prompt = fmt.Sprintf("%s [%s]", title, suggestions[0])
	}
	p.listed = ""
	_, _ = fmt.Fprintf(p.out, "%s: ", prompt)
	return p.readLine()
}

// SelectValue lists the option labels and returns the raw answer; callers
// decide whether it names a valid option. Asking the same question again
// right away repeats only the question.
func (p *LinePrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if p.listed != title {
		_, _ = fmt.Fprintln(p.out)
		for _, opt := range options {
			_, _ = fmt.Fprintln(p.out, opt.Label)
		}
		p.listed = title
	}
	_, _ = fmt.Fprintf(p.out, "\n%s: ", title)
	return p.readLine()
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
