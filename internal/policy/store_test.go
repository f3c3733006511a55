package policy

import (
	"fmt"
	"reflect"
	"testing"
)

func testDocument(id, title string, texts ...string) Document {
	doc := Document{ID: id, Title: title}
	for i, text := range texts {
		doc.Clauses = append(doc.Clauses, Clause{
			ID:     fmt.Sprintf("clause-%d", i+1),
			Text:   text,
			Source: title + " · Uploaded PDF",
		})
	}
	return doc
}

func TestIngestIsIdempotent(t *testing.T) {
	store := NewStore()
	doc := testDocument("travel-policy", "Travel Policy", "Flights must be booked through the approved portal.")

	first := store.Ingest([]Document{doc})
	second := store.Ingest([]Document{doc})

	if len(first) != len(second) {
		t.Fatalf("document count changed on repeat ingest: %d vs %d", len(first), len(second))
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("store content changed on repeat ingest")
	}
}

func TestIngestReplacesWholesale(t *testing.T) {
	store := NewStore()
	original := testDocument("travel-policy", "Travel Policy",
		"Flights must be booked through the approved portal.",
		"Hotel stays are capped at $200 per night.")
	store.Ingest([]Document{original})

	replacement := testDocument("travel-policy", "Travel Policy",
		"Rail travel is preferred for trips under 300 miles.")
	store.Ingest([]Document{replacement})

	for _, doc := range store.List() {
		if doc.ID != "travel-policy" {
			continue
		}
		if len(doc.Clauses) != 1 {
			t.Fatalf("expected 1 clause after replacement, got %d", len(doc.Clauses))
		}
		if doc.Clauses[0].Text != replacement.Clauses[0].Text {
			t.Errorf("old clause survived replacement: %q", doc.Clauses[0].Text)
		}
	}
	if matches := store.Search("hotel stays capped", 10); len(matches) != 0 {
		t.Errorf("replaced clause still retrievable: %+v", matches)
	}
}

func TestIngestKeepsPositionsAndAppendsNew(t *testing.T) {
	store := NewStore()
	store.Ingest([]Document{
		testDocument("expense-policy", "Expense Policy v2", "Meals are reimbursable up to $50 per day."),
		testDocument("travel-policy", "Travel Policy", "Flights must be booked through the approved portal."),
	})

	docs := store.List()
	wantOrder := []string{"expense-policy", "remote-work-policy", "travel-policy"}
	if len(docs) != len(wantOrder) {
		t.Fatalf("expected %d documents, got %d", len(wantOrder), len(docs))
	}
	for i, id := range wantOrder {
		if docs[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, docs[i].ID, id)
		}
	}
	if docs[0].Title != "Expense Policy v2" {
		t.Errorf("upsert did not replace document in place: %s", docs[0].Title)
	}
}

func TestSearchTokenMatching(t *testing.T) {
	store := NewStore()
	matches := store.Search("Can I expense coworking space?", 0)

	if len(matches) == 0 {
		t.Fatal("expected at least one match for coworking query")
	}
	if matches[0].ID != "expense-coworking" {
		t.Errorf("expected coworking clause first, got %s", matches[0].ID)
	}
	if matches[0].Title != "Expense Policy" {
		t.Errorf("match missing owning document title: %q", matches[0].Title)
	}
}

func TestSearchScoreOrdering(t *testing.T) {
	store := &Store{index: make(map[string]int)}
	store.Ingest([]Document{
		{
			ID:    "doc-a",
			Title: "Doc A",
			Clauses: []Clause{
				{ID: "clause-1", Text: "parking is free", Source: "Doc A"},
			},
		},
		{
			ID:    "doc-b",
			Title: "Doc B",
			Clauses: []Clause{
				{ID: "clause-1", Text: "office parking permits cover garage spaces", Source: "Doc B"},
			},
		},
	})

	// Doc B's clause contains 3 of the query tokens, Doc A's only 1.
	matches := store.Search("office parking garage", 0)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Title != "Doc B" {
		t.Errorf("higher scoring clause should rank first, got %s", matches[0].Title)
	}
}

func TestSearchLimitEnforcement(t *testing.T) {
	store := &Store{index: make(map[string]int)}
	doc := Document{ID: "handbook", Title: "Handbook"}
	texts := []string{
		"vacation days accrue monthly and vacation carries over",  // 2 tokens: vacation, days
		"vacation requests need approval",                         // 1 token
		"unused vacation days are paid out on exit with vacation", // 2 tokens
		"sick days are separate from vacation days",               // 2 tokens
		"vacation blackout periods apply in december",             // 1 token
	}
	for i, text := range texts {
		doc.Clauses = append(doc.Clauses, Clause{ID: fmt.Sprintf("clause-%d", i+1), Text: text, Source: "Handbook"})
	}
	store.Ingest([]Document{doc})

	matches := store.Search("vacation days", 3)
	if len(matches) != 3 {
		t.Fatalf("expected exactly 3 matches, got %d", len(matches))
	}
	// The three two-token clauses outrank the one-token clauses.
	want := []string{"clause-1", "clause-3", "clause-4"}
	for i, id := range want {
		if matches[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, matches[i].ID, id)
		}
	}
}

func TestSearchPunctuationOnlyQuery(t *testing.T) {
	store := NewStore()
	if matches := store.Search("???", 0); len(matches) != 0 {
		t.Errorf("punctuation-only query should match nothing, got %d matches", len(matches))
	}
	if matches := store.Search("", 0); len(matches) != 0 {
		t.Errorf("empty query should match nothing, got %d matches", len(matches))
	}
}

func TestSeedAvailability(t *testing.T) {
	store := NewStore()
	matches := store.Search("remote work", 0)
	if len(matches) == 0 {
		t.Fatal("expected seed documents to be searchable at startup")
	}
	found := false
	for _, m := range matches {
		if m.Title == "Remote Work Policy" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a match from the Remote Work Policy, got %+v", matches)
	}
}

func TestCitationDisambiguation(t *testing.T) {
	store := &Store{index: make(map[string]int)}
	store.Ingest([]Document{
		{
			ID:    "doc-a",
			Title: "Doc A",
			Clauses: []Clause{
				{ID: "clause-1", Text: "relocation stipends require VP approval", Source: "Doc A"},
			},
		},
		{
			ID:    "doc-b",
			Title: "Doc B",
			Clauses: []Clause{
				{ID: "clause-1", Text: "relocation packages include moving costs", Source: "Doc B"},
			},
		},
	})

	matches := store.Search("relocation", 0)
	if len(matches) != 2 {
		t.Fatalf("expected both clause-1 entries, got %d matches", len(matches))
	}
	titles := map[string]bool{}
	for _, m := range matches {
		if m.ID != "clause-1" {
			t.Errorf("unexpected clause id %s", m.ID)
		}
		titles[m.Title] = true
	}
	if !titles["Doc A"] || !titles["Doc B"] {
		t.Errorf("matches not attributed to both documents: %v", titles)
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Can I expense coworking space?")
	want := []string{"can", "i", "expense", "coworking", "space"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize() = %v, want %v", got, want)
	}
	if got := tokenize("--- ??? ..."); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}
