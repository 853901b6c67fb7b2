package models

import "strings"

// Filters narrow a result set by exact, case-sensitive metadata equality.
// An empty field places no constraint.
type Filters struct {
	Branch     string `json:"branch"`
	Discipline string `json:"discipline"`
	Revision   string `json:"revision"`
}

func (f Filters) IsEmpty() bool {
	return f.Branch == "" && f.Discipline == "" && f.Revision == ""
}

func (f Filters) Matches(result Result) bool {
	if f.Branch != "" && result.Metadata.Get(MetaBranch) != f.Branch {
		return false
	}
	if f.Discipline != "" && result.Metadata.Get(MetaDiscipline) != f.Discipline {
		return false
	}
	if f.Revision != "" && result.Metadata.Get(MetaRevision) != f.Revision {
		return false
	}

	return true
}

// Apply keeps upstream order and never returns nil.
func (f Filters) Apply(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, result := range results {
		if f.Matches(result) {
			filtered = append(filtered, result)
		}
	}

	return filtered
}

// ContainsText reports whether the title or content contains text, ignoring case.
func (r Result) ContainsText(text string) bool {
	text = strings.ToLower(text)
	return strings.Contains(strings.ToLower(r.Title), text) ||
		strings.Contains(strings.ToLower(r.Content), text)
}
