package posting

import "strings"

// Filter narrows a loaded posting list in memory. Every field is optional;
// an unset field matches everything. Set fields are combined with AND.
type Filter struct {
	Search     string // title substring, case-insensitive
	Type       string // mode equality, case-insensitive
	Company    string // substring, case-insensitive
	Location   string // substring, case-insensitive
	Experience string // substring, case-insensitive
}

func (f Filter) IsZero() bool {
	return f.Search == "" && f.Type == "" && f.Company == "" && f.Location == "" && f.Experience == ""
}

func (f Filter) Matches(p *Posting) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(p.Mode, f.Type) {
		return false
	}
	if f.Company != "" && !strings.Contains(strings.ToLower(p.Company), strings.ToLower(f.Company)) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Experience != "" && !strings.Contains(strings.ToLower(p.Experience), strings.ToLower(f.Experience)) {
		return false
	}
	return true
}

// Apply materializes a new filtered slice; the input is left untouched so a
// reset restores the original list exactly.
func (f Filter) Apply(postings []*Posting) []*Posting {
	if f.IsZero() {
		return postings
	}
	filtered := make([]*Posting, 0, len(postings))
	for _, p := range postings {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
