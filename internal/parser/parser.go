// Package parser turns raw model output into the generated-project
// record. Two response layouts are understood: a single JSON object, and
// the delimited marker layout the prompt asks for. Which one applies is
// decided by looking at the (fence-stripped) content, never by trying
// both.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iPascal619/python-project-generator/internal/errs"
	"github.com/iPascal619/python-project-generator/internal/project"
	"github.com/iPascal619/python-project-generator/internal/prompt"
)

// ErrNoSource reports a response with no main source section. Every
// other artifact can be defaulted; without source there is nothing to
// materialize.
var ErrNoSource = errors.New("no source found in model response")

// Defaults substituted for optional artifacts the response left out.
const (
	DefaultDescription  = "AI generated Python project"
	DefaultDependencies = "# No external dependencies required"
)

// Parse converts raw response content into a validated project record.
// Content that starts with a JSON object after fence stripping must be
// valid JSON; a decode failure is a protocol error, not a reason to try
// the delimited layout.
func Parse(content string) (*project.Generated, error) {
	body := stripFences(content)

	var (
		p   *project.Generated
		err error
	)
	if strings.HasPrefix(body, "{") {
		p, err = parseJSON(body)
		if err != nil {
			return nil, err
		}
	} else {
		p = parseDelimited(body)
	}

	if strings.TrimSpace(p.MainSource) == "" {
		return nil, errs.New(errs.KindProtocol, ErrNoSource)
	}

	applyDefaults(p)
	if err := p.Validate(); err != nil {
		return nil, errs.New(errs.KindProtocol, err)
	}
	return p, nil
}

// stripFences removes a markdown code fence wrapping the whole content.
// Fences inside the content are left alone.
func stripFences(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	} else {
		return content
	}

	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}

// jsonPayload mirrors the JSON object layout. Earlier model revisions
// used the main_py, requirements_txt and readme_md key names; both
// spellings are accepted, with the newer ones winning when both appear.
type jsonPayload struct {
	ProjectName     string `json:"project_name"`
	Description     string `json:"description"`
	MainSource      string `json:"main_source"`
	MainPy          string `json:"main_py"`
	DependencyList  string `json:"dependency_list"`
	RequirementsTxt string `json:"requirements_txt"`
	Readme          string `json:"readme"`
	ReadmeMd        string `json:"readme_md"`
}

func parseJSON(body string) (*project.Generated, error) {
	var payload jsonPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, errs.Newf(errs.KindProtocol, "parsing JSON response: %w", err)
	}

	return &project.Generated{
		Name:           strings.TrimSpace(payload.ProjectName),
		Description:    strings.TrimSpace(payload.Description),
		MainSource:     firstNonEmpty(payload.MainSource, payload.MainPy),
		DependencyList: firstNonEmpty(payload.DependencyList, payload.RequirementsTxt),
		Readme:         firstNonEmpty(payload.Readme, payload.ReadmeMd),
	}, nil
}

func parseDelimited(body string) *project.Generated {
	return &project.Generated{
		Name:           lineValue(body, prompt.NameMarker),
		Description:    lineValue(body, prompt.DescriptionMarker),
		MainSource:     blockValue(body, prompt.MainStartMarker, prompt.MainEndMarker),
		DependencyList: blockValue(body, prompt.RequirementsStartMarker, prompt.RequirementsEndMarker),
		Readme:         blockValue(body, prompt.ReadmeStartMarker, prompt.ReadmeEndMarker),
	}
}

// lineValue returns the text after marker up to the end of its line,
// trimmed. A missing marker yields the empty string.
func lineValue(body, marker string) string {
	idx := strings.Index(body, marker)
	if idx == -1 {
		return ""
	}
	rest := body[idx+len(marker):]
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		rest = rest[:nl]
	}
	return strings.TrimSpace(rest)
}

// blockValue returns the text between the start and end markers, trimmed.
// Either marker missing yields the empty string.
func blockValue(body, start, end string) string {
	si := strings.Index(body, start)
	if si == -1 {
		return ""
	}
	rest := body[si+len(start):]
	ei := strings.Index(rest, end)
	if ei == -1 {
		return ""
	}
	return strings.TrimSpace(rest[:ei])
}

// applyDefaults fills the optional fields the response left empty. The
// main source is checked before this runs and never defaulted.
func applyDefaults(p *project.Generated) {
	if p.Name == "" {
		p.Name = project.DefaultName
	}
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	if strings.TrimSpace(p.DependencyList) == "" {
		p.DependencyList = DefaultDependencies
	}
	if strings.TrimSpace(p.Readme) == "" {
		p.Readme = fmt.Sprintf("# %s\n\n%s", p.Name, p.Description)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
