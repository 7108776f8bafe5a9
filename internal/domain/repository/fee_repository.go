package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
)

// FeeStats aggregates the school-wide fee position for dashboards
type FeeStats struct {
	TotalEntries   int64   `json:"total_entries"`
	TotalCharged   float64 `json:"total_charged"`
	TotalCollected float64 `json:"total_collected"`
}

// FeeRepository defines the interface for fee ledger operations. The receipt
// resolver only reads through GetLedger; writes happen on the fee recording
// and payment paths.
type FeeRepository interface {
	CreateEntry(ctx context.Context, entry *entity.FeeEntry) error
	GetEntryByReceiptNo(ctx context.Context, studentID uuid.UUID, receiptNo string) (*entity.FeeEntry, error)
	// GetLedger returns the student's full fee history in insertion order
	// (created_at, id ascending)
	GetLedger(ctx context.Context, studentID uuid.UUID) ([]entity.FeeEntry, error)
	UpdateEntry(ctx context.Context, entry *entity.FeeEntry) error
	Stats(ctx context.Context) (*FeeStats, error)
}
