package handlers

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// Generator is the text-generation dependency. The real implementation
// is ai.Service; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Handlers holds all dependencies for our route handlers.
type Handlers struct {
	DB  *sql.DB
	AI  Generator
	Log *zap.Logger

	UploadDir      string
	MaxUploadBytes int64

	// Now is the clock used for "today" computations. Nil means
	// time.Now; tests pin it to a fixed date.
	Now func() time.Time
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
