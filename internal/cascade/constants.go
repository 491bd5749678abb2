package cascade

import "regexp"

// MaxCandidateLength is the exclusive upper bound on the length of a
// candidate username, counted in characters.
const MaxCandidateLength = 50

// maxRowCells is the number of leading cells inspected per table row.
const maxRowCells = 3

// Strategy names, in priority order.
const (
	StructuralScan      = "structural"
	TabularScan         = "tabular"
	SelectorPatternScan = "selector-pattern"
	FreeTextScan        = "free-text"
)

var (
	// Texts the structural scan never accepts, compared case-sensitively.
	structuralStopwords = map[string]bool{
		"following": true,
		"followers": true,
	}

	// Labels and tag-like words that show up as leaf text in exports.
	structuralLabels = map[string]bool{
		"Instagram": true,
		"html":      true,
		"body":      true,
		"head":      true,
		"script":    true,
		"style":     true,
		"Following": true,
		"Followers": true,
		"div":       true,
	}

	// Tokens the free-text scan never accepts, compared on the lower-case form.
	freeTextStopwords = map[string]bool{
		"html":        true,
		"body":        true,
		"instagram":   true,
		"following":   true,
		"followers":   true,
		"connections": true,
	}

	// Selectors historically used by the export format, tried in order.
	knownSelectors = []string{
		"._a6-p",
		".follows",
		".follower",
		".connections",
		".user-item",
		".user-username",
		`div[role="row"]`,
	}

	// A handle-shaped token bounded by start, whitespace or @ on the left and
	// whitespace or end on the right. Whitespace includes the Unicode space
	// separators and BOM, so &nbsp; separates tokens too.
	usernameTokenRegex = regexp.MustCompile(`(?:^|[\s\p{Z}\x{FEFF}]|@)([a-zA-Z0-9._]{3,30})(?:[\s\p{Z}\x{FEFF}]|$)`)

	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// KnownSelectors returns a copy of the selector list used by the
// selector-pattern scan, in priority order.
func KnownSelectors() []string {
	return append([]string(nil), knownSelectors...)
}
