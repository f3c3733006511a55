package policy

import (
	"sort"
	"strings"
	"sync"
)

// DefaultSearchLimit is the number of matches returned when the caller does
// not ask for a specific limit.
const DefaultSearchLimit = 3

// Clause is an atomic retrievable unit of policy text.
type Clause struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Source string `json:"source"`
	Page   int    `json:"page,omitempty"`
}

// Document is a titled, ordered collection of clauses. The ID is derived
// deterministically from the uploaded file name, so re-ingesting the same
// file replaces the prior record.
type Document struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Clauses []Clause `json:"clauses"`
}

// Match is a clause annotated with the title of its owning document. Clause
// ids are only unique within a document, so the title is required to
// disambiguate results.
type Match struct {
	Clause
	Title string `json:"title"`
}

// Store is a mutex-guarded, insertion-ordered collection of policy documents.
// It is owned by the composition root and shared across request handlers.
// Ingest replaces documents wholesale by id; Search ranks clauses by token
// overlap with the query. Neither operation can fail.
type Store struct {
	mu    sync.RWMutex
	index map[string]int // document id -> position in docs
	docs  []Document
}

// NewStore creates a Store pre-populated with the built-in policy documents,
// so the assistant is useful before any upload.
func NewStore() *Store {
	s := &Store{index: make(map[string]int)}
	s.Ingest(seedDocuments())
	return s
}

// Ingest upserts each document by id. An existing document is replaced in
// place, keeping its relative position; unseen ids are appended. The call is
// idempotent for identical input. It returns a snapshot of the full document
// list after the upsert.
func (s *Store) Ingest(documents []Document) []Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range documents {
		if pos, ok := s.index[doc.ID]; ok {
			s.docs[pos] = doc
			continue
		}
		s.index[doc.ID] = len(s.docs)
		s.docs = append(s.docs, doc)
	}
	return s.snapshot()
}

// List returns a snapshot of all stored documents in insertion order.
func (s *Store) List() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() []Document {
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Search scores every stored clause against the query and returns the top
// matches in descending score order. The score of a clause is the number of
// distinct query tokens that appear as a literal substring of its lowercased
// text; clauses with score zero are dropped. Ties keep the original
// iteration order. A query that yields no tokens produces no matches.
func (s *Store) Search(query string, limit int) []Match {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	tokens := tokenize(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		match Match
		score int
	}
	var candidates []scored
	for _, doc := range s.docs {
		for _, clause := range doc.Clauses {
			text := strings.ToLower(clause.Text)
			score := 0
			for _, token := range tokens {
				if strings.Contains(text, token) {
					score++
				}
			}
			if score > 0 {
				candidates = append(candidates, scored{
					match: Match{Clause: clause, Title: doc.Title},
					score: score,
				})
			}
		}
	}

	// Stable sort: no secondary key is defined, ties resolve by iteration order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, c.match)
	}
	return matches
}

// tokenize lowercases the query and splits it on runs of characters outside
// [a-z0-9]. No stemming or stopword removal is applied.
func tokenize(query string) []string {
	return strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}
