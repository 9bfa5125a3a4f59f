// Where: internal/domain/project/project.go
// What: Project configuration record and field validation.
// Why: Keep prompt validation rules independent of prompting and file I/O.
package project

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// LicenseNone is the license key that skips license generation.
const LicenseNone = "none"

// RuntimeVersions lists the selectable target runtime versions in menu order.
var RuntimeVersions = []string{"3.8", "3.9", "3.10", "3.11", "3.12"}

// LicenseOption describes one selectable license.
type LicenseOption struct {
	Key         string
	Description string
}

// Licenses lists the selectable licenses in menu order.
var Licenses = []LicenseOption{
	{Key: "mit", Description: "MIT License - Simple and permissive"},
	{Key: "apache-2.0", Description: "Apache License 2.0 - Patent protection and trademark use"},
	{Key: "gpl-3.0", Description: "GNU GPLv3 - Copyleft requiring source distribution"},
	{Key: "bsd-3-clause", Description: "BSD 3-Clause - Similar to MIT but with an extra clause"},
	{Key: LicenseNone, Description: "No License - All rights reserved"},
}

var (
	separatorPattern  = regexp.MustCompile(`[-\s\p{Z}]+`)
	identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	versionPattern    = regexp.MustCompile(`^(\d+)\.(\d+)$`)
)

// Config is the validated project configuration collected from the user.
type Config struct {
	Name        string
	Description string
	AuthorName  string
	AuthorEmail string
	Version     string
	License     string
}

// HasLicense reports whether a license file should be produced.
func (c Config) HasLicense() bool {
	return c.License != "" && c.License != LicenseNone
}

// Validate re-checks the fields that carry format or membership rules.
func (c Config) Validate() error {
	var errs []error
	if !identifierPattern.MatchString(c.Name) {
		errs = append(errs, fmt.Errorf("invalid project name %q", c.Name))
	}
	if !IsRuntimeVersion(c.Version) {
		errs = append(errs, fmt.Errorf("unsupported version %q", c.Version))
	}
	if !IsLicense(c.License) {
		errs = append(errs, fmt.Errorf("unknown license %q", c.License))
	}
	return errors.Join(errs...)
}

// NormalizeName lowercases raw, collapses runs of hyphens and whitespace into
// underscores and checks the result is a valid package identifier.
func NormalizeName(raw string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = separatorPattern.ReplaceAllString(name, "_")
	if !identifierPattern.MatchString(name) {
		return "", false
	}
	return name, true
}

// ResolveVersionChoice maps a 1-based menu index to a runtime version.
func ResolveVersionChoice(raw string) (string, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || choice < 1 || choice > len(RuntimeVersions) {
		return "", false
	}
	return RuntimeVersions[choice-1], true
}

// ResolveLicense normalizes raw and checks it names a known license.
func ResolveLicense(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if !IsLicense(key) {
		return "", false
	}
	return key, true
}

// IsRuntimeVersion reports whether version is one of RuntimeVersions.
func IsRuntimeVersion(version string) bool {
	for _, v := range RuntimeVersions {
		if v == version {
			return true
		}
	}
	return false
}

// IsLicense reports whether key is one of Licenses.
func IsLicense(key string) bool {
	for _, opt := range Licenses {
		if opt.Key == key {
			return true
		}
	}
	return false
}

// NextMinor returns the version with its minor component incremented.
// "3.10" becomes "3.11".
func NextMinor(version string) (string, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(version))
	if m == nil {
		return "", fmt.Errorf("version %q is not MAJOR.MINOR", version)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return "", fmt.Errorf("parse minor of %q: %w", version, err)
	}
	return fmt.Sprintf("%s.%d", m[1], minor+1), nil
}

// Title turns a snake_case name into space separated Title Case. A letter
// is uppercased when the rune before it is not a letter, so digits start a
// new word ("py3tools" becomes "Py3Tools").
func Title(name string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.ReplaceAll(name, "_", " ") {
		switch {
		case unicode.IsLetter(r) && prevLetter:
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
