// Where: internal/infra/substitute/substitute.go
// What: Apply resolved substitution targets to files under a template root.
// Why: Keep the read-rewrite loop separate from rule parsing and prompting.
package substitute

import (
	"fmt"
	"path/filepath"

	"github.com/poruru-code/projinit/internal/domain/rules"
	"github.com/poruru-code/projinit/internal/infra/fileops"
)

// Apply rewrites every target in order and returns the root-relative paths
// whose content changed, each listed once.
//
// Exact-path targets are read, rewritten and written back in full; a missing
// file is an error unless the target is optional. Glob targets skip silently
// when nothing matches and only write files whose content changed.
func Apply(root string, targets []rules.ResolvedTarget) ([]string, error) {
	changed := newPathSet()
	for _, target := range targets {
		var err error
		switch {
		case target.Path != "":
			err = applyPath(root, target, changed)
		case target.Glob != "":
			err = applyGlob(root, target, changed)
		default:
			err = fmt.Errorf("target has neither path nor glob")
		}
		if err != nil {
			return changed.list(), err
		}
	}
	return changed.list(), nil
}

func applyPath(root string, target rules.ResolvedTarget, changed *pathSet) error {
	full := filepath.Join(root, target.Path)

	var original string
	content := target.Write
	if !target.IsWrite {
		if !fileops.FileExists(full) && target.Optional {
			return nil
		}
		text, err := fileops.ReadText(full)
		if err != nil {
			return fmt.Errorf("read %s: %w", target.Path, err)
		}
		original = text
		content = text
	} else if text, err := fileops.ReadText(full); err == nil {
		original = text
	}

	updated := rewrite(content, target.Substitutions)
	if err := fileops.WriteText(full, updated); err != nil {
		return fmt.Errorf("write %s: %w", target.Path, err)
	}
	if updated != original {
		changed.add(target.Path)
	}
	return nil
}

func applyGlob(root string, target rules.ResolvedTarget, changed *pathSet) error {
	files, err := fileops.Glob(root, target.Glob)
	if err != nil {
		return err
	}
	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			rel = file
		}
		content, err := fileops.ReadText(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		base := content
		if target.IsWrite {
			base = target.Write
		}
		updated := rewrite(base, target.Substitutions)
		if updated == content {
			continue
		}
		if err := fileops.WriteText(file, updated); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		changed.add(filepath.ToSlash(rel))
	}
	return nil
}

func rewrite(content string, subs []rules.Substitution) string {
	for _, sub := range subs {
		content = sub.Apply(content)
	}
	return content
}

type pathSet struct {
	seen  map[string]struct{}
	order []string
}

func newPathSet() *pathSet {
	return &pathSet{seen: map[string]struct{}{}}
}

func (s *pathSet) add(path string) {
	if _, ok := s.seen[path]; ok {
		return
	}
	s.seen[path] = struct{}{}
	s.order = append(s.order, path)
}

func (s *pathSet) list() []string {
	return append([]string(nil), s.order...)
}
