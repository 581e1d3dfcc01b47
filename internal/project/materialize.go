package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/iPascal619/python-project-generator/internal/errs"
)

// gitignoreTemplate is the fixed ignore file every generated project gets.
const gitignoreTemplate = `# Byte-compiled / cached
__pycache__/
*.py[cod]

# Virtual environments
venv/
.venv/
env/

# Environment variables
.env

# Distribution / packaging
build/
dist/
*.egg-info/

# IDE
.idea/
.vscode/

# OS files
.DS_Store
`

// Result lists what one materialization wrote.
type Result struct {
	Name  string
	Dir   string
	Files []string
}

// Materializer writes generated projects under a root directory, one
// dated subdirectory per day, one project directory per name.
type Materializer struct {
	root      string
	generator string
	logger    *slog.Logger
}

// NewMaterializer returns a materializer rooted at root. The generator
// string names the tool and model in the README attribution line.
func NewMaterializer(root, generator string, logger *slog.Logger) *Materializer {
	return &Materializer{root: root, generator: generator, logger: logger}
}

// Materialize writes the project tree and returns what was written. A
// non-empty overrideName replaces the name the model chose. Files are
// written in name order and existing ones are overwritten; on error,
// files written before the failure are left in place.
func (m *Materializer) Materialize(g *Generated, overrideName string) (*Result, error) {
	name := overrideName
	if name == "" {
		name = g.Name
	}
	name = SanitizeName(name)
	if name == "" {
		name = DefaultName
	}

	date := time.Now().Format("2006-01-02")
	dir := filepath.Join(m.root, "project_"+date, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errs.Newf(errs.KindFilesystem, "creating project directory %s: %w", dir, err)
	}

	files := map[string]string{
		"main.py":          g.MainSource,
		"requirements.txt": g.DependencyList,
		"README.md":        m.enhanceReadme(g, date),
		".gitignore":       gitignoreTemplate,
	}
	if strings.Contains(strings.ToLower(g.Description), "test") {
		files["test_main.py"] = testStub(name)
	}

	names := make([]string, 0, len(files))
	for fileName := range files {
		names = append(names, fileName)
	}
	sort.Strings(names)

	for _, fileName := range names {
		path := filepath.Join(dir, fileName)
		if err := os.WriteFile(path, []byte(files[fileName]), 0644); err != nil {
			return nil, errs.Newf(errs.KindFilesystem, "writing %s: %w", path, err)
		}
	}

	m.logger.Info("project written", "dir", dir, "files", len(names))
	return &Result{Name: name, Dir: dir, Files: names}, nil
}

// enhanceReadme appends the project-information and usage sections to the
// README the model wrote. The result always ends with a newline.
func (m *Materializer) enhanceReadme(g *Generated, date string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(g.Readme, "\n"))
	b.WriteString("\n\n## Project Information\n\n")
	fmt.Fprintf(&b, "- Generated on: %s\n", date)
	fmt.Fprintf(&b, "- Generated by: %s\n", m.generator)
	if g.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", g.Description)
	}
	b.WriteString("\n## Installation & Usage\n\n")
	b.WriteString("```bash\npip install -r requirements.txt\npython main.py\n```\n")
	return b.String()
}

// testStub returns the unittest skeleton added when the project
// description mentions testing.
func testStub(name string) string {
	return fmt.Sprintf(`import unittest


class TestGeneratedProject(unittest.TestCase):
    """Auto-generated starter tests for %s."""

    def test_placeholder(self):
        self.assertTrue(True)


if __name__ == "__main__":
    unittest.main()
`, name)
}
