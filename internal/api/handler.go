// Package api exposes the console's HTTP surface over gin.
package api

import (
	"github.com/verahq/vera-backend/internal/chat"
	"github.com/verahq/vera-backend/internal/hr"
	"github.com/verahq/vera-backend/internal/ingestion"
	"github.com/verahq/vera-backend/internal/payroll"
	"github.com/verahq/vera-backend/internal/policy"
	"github.com/verahq/vera-backend/pkg/logger"
)

// Storage labels reported by the ingest endpoint.
const (
	StorageMemory        = "memory"
	StoragePineconeReady = "pinecone-ready"
)

// Handler bundles the services behind the API endpoints.
type Handler struct {
	store     *policy.Store
	ingestion *ingestion.Service
	chat      *chat.Service
	hr        *hr.Service
	profiles  *hr.ProfileService
	payroll   *payroll.Service
	storage   string
	log       *logger.Logger
}

// NewHandler creates a Handler. chat may be nil when OpenAI is not
// configured; storage labels where ingested policies end up.
func NewHandler(
	store *policy.Store,
	ingestionSvc *ingestion.Service,
	chatSvc *chat.Service,
	hrSvc *hr.Service,
	profiles *hr.ProfileService,
	payrollSvc *payroll.Service,
	storage string,
	log *logger.Logger,
) *Handler {
	return &Handler{
		store:     store,
		ingestion: ingestionSvc,
		chat:      chatSvc,
		hr:        hrSvc,
		profiles:  profiles,
		payroll:   payrollSvc,
		storage:   storage,
		log:       log,
	}
}
