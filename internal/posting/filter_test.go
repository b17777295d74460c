package posting

import "testing"

func samplePostings() []*Posting {
	return []*Posting{
		{Title: "Backend Intern", Mode: "Remote", Location: "Pune", Company: "Acme", Experience: "0-1 years"},
		{Title: "Design Intern", Mode: "Onsite", Location: "Pune", Company: "Globex", Experience: "1-2 years"},
		{Title: "Data Analyst", Mode: "Remote", Location: "Kochi", Company: "Acme", Experience: "0-1 years"},
	}
}

func titles(postings []*Posting) []string {
	out := make([]string, len(postings))
	for i, p := range postings {
		out[i] = p.Title
	}
	return out
}

func TestFilterSearchMatchesTitleSubstring(t *testing.T) {
	filtered := Filter{Search: "intern"}.Apply(samplePostings())
	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches, got %v", titles(filtered))
	}
	if filtered[0].Title != "Backend Intern" || filtered[1].Title != "Design Intern" {
		t.Fatalf("unexpected matches: %v", titles(filtered))
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	filtered := Filter{Search: "intern", Type: "Remote"}.Apply(samplePostings())
	if len(filtered) != 1 || filtered[0].Title != "Backend Intern" {
		t.Fatalf("expected only Backend Intern, got %v", titles(filtered))
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	filtered := Filter{Company: "ACME", Location: "pune"}.Apply(samplePostings())
	if len(filtered) != 1 || filtered[0].Title != "Backend Intern" {
		t.Fatalf("expected only Backend Intern, got %v", titles(filtered))
	}
}

func TestFilterUnsetFieldMatchesEverything(t *testing.T) {
	postings := samplePostings()
	filtered := Filter{}.Apply(postings)
	if len(filtered) != len(postings) {
		t.Fatalf("zero filter must keep all postings, got %d of %d", len(filtered), len(postings))
	}
}

func TestFilterResetRestoresOriginalSet(t *testing.T) {
	postings := samplePostings()
	_ = Filter{Search: "intern", Location: "Pune"}.Apply(postings)

	// Resetting means applying the zero filter to the original list again.
	restored := Filter{}.Apply(postings)
	if len(restored) != 3 {
		t.Fatalf("expected original set of 3, got %d", len(restored))
	}
	for i := range postings {
		if restored[i] != postings[i] {
			t.Fatalf("restored set differs from original at index %d", i)
		}
	}
}

func TestFilterExperienceSubstring(t *testing.T) {
	filtered := Filter{Experience: "1-2"}.Apply(samplePostings())
	if len(filtered) != 1 || filtered[0].Title != "Design Intern" {
		t.Fatalf("expected only Design Intern, got %v", titles(filtered))
	}
}
