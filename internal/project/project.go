// Package project defines the generated-project record and writes it to
// disk.
package project

import (
	"fmt"
	"strings"
)

// DefaultName is used when the response names no project, or when
// sanitizing leaves nothing usable of the name it did give.
const DefaultName = "generated_project"

// Generated is the flat record parsed from one model response.
type Generated struct {
	Name           string `json:"project_name"`
	Description    string `json:"description,omitempty"`
	MainSource     string `json:"main_source"`
	DependencyList string `json:"dependency_list"`
	Readme         string `json:"readme"`
}

// Validate reports the first required field that is still empty. The
// parser defaults every optional field before calling this, so a failure
// here points at a defaulting bug rather than a bad response.
func (g *Generated) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"project_name", g.Name},
		{"main_source", g.MainSource},
		{"dependency_list", g.DependencyList},
		{"readme", g.Readme},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("required field %s is empty", f.name)
		}
	}
	return nil
}

// SanitizeName keeps only characters safe in a directory name: letters,
// digits, '.', '_' and '-'. Everything else, path separators included, is
// dropped. A result of nothing but dots names the directory itself or a
// parent, so it comes back empty like any other unusable name.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	s := b.String()
	if strings.Trim(s, ".") == "" {
		return ""
	}
	return s
}
