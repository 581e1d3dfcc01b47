// Package prompt builds the instruction text sent to the completion
// endpoint. Building is pure: the same type and difficulty always produce
// the same prompt.
package prompt

import (
	"fmt"
	"strings"
)

// Project types with dedicated steering. Unknown values are allowed and
// simply get no focus sentence, like TypeGeneral.
const (
	TypeGeneral    = "general"
	TypeUtility    = "utility"
	TypeWeb        = "web"
	TypeData       = "data"
	TypeGame       = "game"
	TypeAutomation = "automation"
)

// Difficulty tiers.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Marker tokens of the delimited response layout. The parser looks for
// the same tokens when it extracts the artifacts.
const (
	NameMarker        = "PROJECT_NAME:"
	DescriptionMarker = "DESCRIPTION:"

	MainStartMarker = "===MAIN_PY_START==="
	MainEndMarker   = "===MAIN_PY_END==="

	RequirementsStartMarker = "===REQUIREMENTS_START==="
	RequirementsEndMarker   = "===REQUIREMENTS_END==="

	ReadmeStartMarker = "===README_START==="
	ReadmeEndMarker   = "===README_END==="
)

// focusByType adds one steering sentence for the types that have one.
var focusByType = map[string]string{
	TypeUtility:    "Focus on a practical command-line utility that solves a small everyday problem.",
	TypeWeb:        "Focus on a minimal web application or HTTP API using the Python standard library or a single lightweight framework.",
	TypeData:       "Focus on a data processing or analysis task and include a small sample dataset inline.",
	TypeGame:       "Focus on a simple interactive terminal game.",
	TypeAutomation: "Focus on automating a repetitive chore such as organizing files or generating a report.",
}

// Types lists the known project types in display order.
func Types() []string {
	return []string{TypeGeneral, TypeUtility, TypeWeb, TypeData, TypeGame, TypeAutomation}
}

// Difficulties lists the difficulty tiers in ascending order.
func Difficulties() []string {
	return []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Build returns the full instruction string for one generation request.
func Build(projectType, difficulty string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a Python project generator. Create a unique, useful, %s-level Python project of type %q.\n\n", difficulty, projectType)

	b.WriteString("Requirements:\n")
	b.WriteString("- The program must be complete and runnable as a single main.py.\n")
	b.WriteString("- List runtime dependencies one per line in requirements.txt format; write \"# No external dependencies required\" if there are none.\n")
	b.WriteString("- The README must explain what the project does and how to run it.\n")
	if focus, ok := focusByType[projectType]; ok {
		b.WriteString("- " + focus + "\n")
	}

	b.WriteString("\nRespond in exactly this layout, with no commentary outside the markers:\n\n")
	b.WriteString(NameMarker + " <short name using only letters, digits, dots, underscores and dashes>\n")
	b.WriteString(DescriptionMarker + " <one sentence describing the project>\n")
	b.WriteString(MainStartMarker + "\n<contents of main.py>\n" + MainEndMarker + "\n")
	b.WriteString(RequirementsStartMarker + "\n<contents of requirements.txt>\n" + RequirementsEndMarker + "\n")
	b.WriteString(ReadmeStartMarker + "\n<contents of README.md>\n" + ReadmeEndMarker + "\n")

	return b.String()
}
