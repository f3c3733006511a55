package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/verahq/vera-backend/internal/policy"
	"github.com/verahq/vera-backend/internal/policy/extract"
	"github.com/verahq/vera-backend/pkg/logger"
)

const (
	// MaxFilesPerRequest bounds how many uploads one request may ingest;
	// extras are silently dropped.
	MaxFilesPerRequest = 2

	// maxTextLength clips the extracted text before it is sent to the
	// extraction backend. Longer documents are truncated, not chunked.
	maxTextLength = 4000

	// minExtractableLength skips extraction for documents whose text is too
	// short to yield meaningful clauses.
	minExtractableLength = 50

	fallbackClauseText = "Policy uploaded. Full clause extraction pending. Update ingestion pipeline to chunk text for embeddings."
)

// File is one uploaded policy file.
type File struct {
	Name string
	Data []byte
}

// DocumentContext is the per-file chat context produced by PrepareContext.
type DocumentContext struct {
	Name    string `json:"name"`
	Context string `json:"context"`
}

// Service converts uploaded policy PDFs into stored policy documents. Every
// step is best effort: parse and extraction failures degrade to a fallback
// clause instead of failing the request.
type Service struct {
	store     *policy.Store
	extractor extract.Extractor // nil when no generation backend is configured
	log       *logger.Logger
}

// NewService creates an ingestion Service. extractor may be nil.
func NewService(store *policy.Store, extractor extract.Extractor, log *logger.Logger) *Service {
	return &Service{store: store, extractor: extractor, log: log}
}

// Ingest builds a policy document per uploaded file and upserts the batch
// into the store. At most MaxFilesPerRequest files are processed.
func (s *Service) Ingest(ctx context.Context, files []File) []policy.Document {
	if len(files) > MaxFilesPerRequest {
		files = files[:MaxFilesPerRequest]
	}

	documents := make([]policy.Document, 0, len(files))
	for _, file := range files {
		pages, trimmed := s.inspect(file)
		clauses := s.extractClauses(ctx, file.Name, trimmed)

		if len(clauses) == 0 {
			clauses = []string{fallbackClauseText}
		}

		doc := policy.Document{
			ID:    DocumentID(file.Name),
			Title: DocumentTitle(file.Name),
		}
		for i, text := range clauses {
			doc.Clauses = append(doc.Clauses, policy.Clause{
				ID:     fmt.Sprintf("clause-%d", i+1),
				Text:   text,
				Source: fmt.Sprintf("%s · Uploaded PDF", file.Name),
				Page:   pages,
			})
		}
		documents = append(documents, doc)
	}

	s.store.Ingest(documents)
	return documents
}

// PrepareContext extracts chat context from uploaded files without touching
// the policy store. Each file contributes either its extracted clauses as
// bullet points or, when extraction yields nothing, the first 800 characters
// of its text.
func (s *Service) PrepareContext(ctx context.Context, files []File) ([]DocumentContext, string) {
	if len(files) > MaxFilesPerRequest {
		files = files[:MaxFilesPerRequest]
	}

	contexts := make([]DocumentContext, 0, len(files))
	combined := make([]string, 0, len(files))
	for _, file := range files {
		_, trimmed := s.inspect(file)
		clauses := s.extractClauses(ctx, file.Name, trimmed)

		var context string
		if len(clauses) > 0 {
			lines := make([]string, 0, len(clauses))
			for _, clause := range clauses {
				lines = append(lines, fmt.Sprintf("- %s (%s)", clause, file.Name))
			}
			context = strings.Join(lines, "\n")
		} else {
			context = truncate(trimmed, 800)
		}

		contexts = append(contexts, DocumentContext{Name: file.Name, Context: context})
		combined = append(combined, context)
	}
	return contexts, strings.Join(combined, "\n")
}

// inspect runs the two best-effort PDF steps. A failure in either is logged
// as a warning and tolerated: a missing page count leaves pages at zero, a
// failed text extraction leaves the trimmed text empty.
func (s *Service) inspect(file File) (pages int, trimmed string) {
	pages, err := pageCount(file.Data)
	if err != nil {
		s.log.WithError(err).Warn("PDF parse failed")
		pages = 0
	}

	text, err := extractText(file.Data)
	if err != nil {
		s.log.WithError(err).Warn("PDF text extraction failed")
		text = ""
	}
	return pages, normalize(text)
}

// extractClauses calls the extraction adapter when it is configured and the
// text clears the minimum length. Any adapter failure degrades to nil.
func (s *Service) extractClauses(ctx context.Context, name, trimmed string) []string {
	if s.extractor == nil || len(trimmed) <= minExtractableLength {
		return nil
	}
	clauses, err := s.extractor.Extract(ctx, trimmed)
	if err != nil {
		s.log.WithField("file", name).WithError(err).Warn("AI clause extraction failed")
		return nil
	}
	return clauses
}

// DocumentID derives the stable store id for an uploaded file name.
func DocumentID(name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return slug + "-policy"
}

// DocumentTitle strips the .pdf extension for display.
func DocumentTitle(name string) string {
	if ext := strings.ToLower(name); strings.HasSuffix(ext, ".pdf") {
		return name[:len(name)-len(".pdf")]
	}
	return name
}

// normalize collapses whitespace runs to single spaces, trims, and clips to
// maxTextLength characters.
func normalize(text string) string {
	return truncate(strings.Join(strings.Fields(text), " "), maxTextLength)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
