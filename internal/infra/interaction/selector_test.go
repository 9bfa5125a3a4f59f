package interaction

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestHuhPrompterInputUsesRunner(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle string
	var gotSuggestions []string
	runInputPrompt = func(title string, suggestions []string, input *string) error {
		gotTitle = title
		gotSuggestions = append([]string(nil), suggestions...)
		*input = "Jane Doe"
		return nil
	}

	got, err := (HuhPrompter{}).Input("Author name", []string{"Jane Doe"})
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "Jane Doe" {
		t.Fatalf("Input() = %q", got)
	}
	if gotTitle != "Author name" {
		t.Fatalf("title = %q", gotTitle)
	}
	if len(gotSuggestions) != 1 || gotSuggestions[0] != "Jane Doe" {
		t.Fatalf("suggestions = %#v", gotSuggestions)
	}
}

func TestHuhPrompterInputWrapsError(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = func(string, []string, *string) error {
		return errors.New("tty unavailable")
	}

	_, err := (HuhPrompter{}).Input("Project name", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt input: tty unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterSelectValueUsesRunner(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })

	var gotTitle string
	var gotOptions int
	runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
		gotTitle = title
		gotOptions = len(options)
		*selected = options[1].Value
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Choose license", []SelectOption{
		{Label: "mit: MIT License", Value: "mit"},
		{Label: "none: No License", Value: "none"},
	})
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "none" {
		t.Fatalf("SelectValue() = %q, want none", got)
	}
	if gotTitle != "Choose license" || gotOptions != 2 {
		t.Fatalf("title = %q options = %d", gotTitle, gotOptions)
	}
}

func TestHuhPrompterSelectValueEmptyOptionsReturnsEmpty(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	called := false
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		called = true
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Version", nil)
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "" {
		t.Fatalf("SelectValue() = %q, want empty", got)
	}
	if called {
		t.Fatal("runner must not be called for empty options")
	}
}

func TestHuhPrompterSelectValueWrapsError(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		return errors.New("user aborted")
	}

	_, err := (HuhPrompter{}).SelectValue("Version", []SelectOption{{Label: "1. 3.8", Value: "1"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt select value: user aborted" {
		t.Fatalf("unexpected error: %v", err)
	}
}
