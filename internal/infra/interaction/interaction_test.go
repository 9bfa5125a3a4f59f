// Where: internal/infra/interaction/interaction_test.go
// What: Tests for terminal detection and prompter selection.
// Why: Keep non-interactive detection deterministic in tests.
package interaction

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestIsTerminalNilAndPipe(t *testing.T) {
	if IsTerminal(nil) {
		t.Fatal("IsTerminal(nil) must be false")
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()
	if IsTerminal(r) {
		t.Fatal("IsTerminal(pipe) must be false")
	}
}

func TestNewPrompterSelection(t *testing.T) {
	if _, ok := NewPrompter(strings.NewReader(""), &bytes.Buffer{}).(*LinePrompter); !ok {
		t.Fatal("non-file streams must use LinePrompter")
	}

	orig := IsTerminal
	t.Cleanup(func() { IsTerminal = orig })
	IsTerminal = func(*os.File) bool { return true }
	if _, ok := NewPrompter(os.Stdin, os.Stdout).(HuhPrompter); !ok {
		t.Fatal("terminals must use HuhPrompter")
	}

	IsTerminal = func(f *os.File) bool { return f == os.Stdin }
	if _, ok := NewPrompter(os.Stdin, os.Stdout).(*LinePrompter); !ok {
		t.Fatal("redirected stdout must use LinePrompter")
	}
}
