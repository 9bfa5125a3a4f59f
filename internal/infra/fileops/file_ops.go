// Where: internal/infra/fileops/file_ops.go
// What: Filesystem operations used while customizing a template.
// Why: Keep read/rewrite/rename/remove behavior consistent across steps.
package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrTargetExists is returned by RenameDir when the destination is taken.
var ErrTargetExists = errors.New("target directory already exists")

const defaultFileMode fs.FileMode = 0o644

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// ReadText reads the whole file into memory.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText replaces the file content in full, keeping the existing mode.
// There is no temporary file or backup; an interrupted write loses data.
func WriteText(path, content string) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), mode)
}

// RenameDir moves src to dst and refuses to replace an existing dst.
func RenameDir(src, dst string) error {
	if !DirExists(src) {
		return fmt.Errorf("rename %s: %w", src, fs.ErrNotExist)
	}
	if FileOrDirExists(dst) {
		return fmt.Errorf("rename %s to %s: %w", src, dst, ErrTargetExists)
	}
	return os.Rename(src, dst)
}

// RemovePath deletes a file or directory tree. Missing paths are not an error.
func RemovePath(path string) error {
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Glob returns regular files under root matching pattern, sorted.
// A malformed pattern is reported; a missing directory yields no matches.
func Glob(root, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	files := matches[:0]
	for _, m := range matches {
		if FileExists(m) {
			files = append(files, m)
		}
	}
	return files, nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileOrDirExists reports whether anything exists at path.
func FileOrDirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MissingPaths returns the entries of rel that do not exist under root.
func MissingPaths(root string, rel []string) []string {
	var missing []string
	for _, p := range rel {
		if !FileOrDirExists(filepath.Join(root, p)) {
			missing = append(missing, p)
		}
	}
	return missing
}
