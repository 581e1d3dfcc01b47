package project

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "todo_cli", "todo_cli"},
		{"spaces dropped", "my project", "myproject"},
		{"mixed", "My-App_v2.0", "My-App_v2.0"},
		{"path separators dropped", "../etc/passwd", "..etcpasswd"},
		{"shell noise dropped", "app$(rm); `x`", "apprmx"},
		{"unicode dropped", "prøjekt", "prjekt"},
		{"empty", "", ""},
		{"all invalid", "!!!///", ""},
		{"current dir alias", ".", ""},
		{"parent dir alias", "..", ""},
		{"all dots", "....", ""},
		{"dots around noise", "./!/.", ""},
		{"leading dots kept", "..hidden", "..hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{"todo_cli", "My App (v2)", "a/b\\c", "___", "...", "weird\tname\n"}
	for _, in := range inputs {
		once := SanitizeName(in)
		if twice := SanitizeName(once); twice != once {
			t.Errorf("SanitizeName not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestValidate(t *testing.T) {
	full := Generated{
		Name:           "app",
		MainSource:     "print('hi')",
		DependencyList: "# No external dependencies required",
		Readme:         "# app",
	}
	if err := full.Validate(); err != nil {
		t.Errorf("Validate() error on complete record: %v", err)
	}

	missing := full
	missing.Readme = "   "
	if err := missing.Validate(); err == nil {
		t.Error("Validate() should fail on a whitespace-only readme")
	}
}

func TestEnhanceReadme(t *testing.T) {
	m := NewMaterializer(t.TempDir(), "projgen (llama-3-70b-8192)", discardLogger())
	g := &Generated{
		Name:        "app",
		Description: "A small sample app",
		Readme:      "Hello",
	}

	got := m.enhanceReadme(g, "2026-08-25")

	if !strings.HasSuffix(got, "\n") {
		t.Error("enhanced README must end with a newline")
	}
	if !strings.HasPrefix(got, "Hello\n") {
		t.Errorf("original README text must come first, got %q", got[:20])
	}
	if !strings.Contains(got, "## Project Information") {
		t.Error("missing Project Information heading")
	}
	if !strings.Contains(got, "Generated by: projgen (llama-3-70b-8192)") {
		t.Error("missing generator attribution")
	}
	if !strings.Contains(got, "Generated on: 2026-08-25") {
		t.Error("missing generation date")
	}
	if !strings.Contains(got, "- Description: A small sample app") {
		t.Error("missing description line")
	}

	// The usage snippet has to sit inside a fenced code block.
	fenceIdx := strings.Index(got, "```bash")
	cmdIdx := strings.Index(got, "python main.py")
	closeIdx := strings.Index(got[fenceIdx+3:], "```")
	if fenceIdx == -1 || cmdIdx == -1 || cmdIdx < fenceIdx || closeIdx == -1 {
		t.Errorf("python main.py must appear inside a fenced block:\n%s", got)
	}
	if !strings.Contains(got, "pip install -r requirements.txt") {
		t.Error("missing pip install line")
	}
}

func TestEnhanceReadmeNoDescription(t *testing.T) {
	m := NewMaterializer(t.TempDir(), "projgen", discardLogger())
	got := m.enhanceReadme(&Generated{Name: "app", Readme: "# app"}, "2026-08-25")

	if strings.Contains(got, "- Description:") {
		t.Error("empty description must not produce a description line")
	}
}
