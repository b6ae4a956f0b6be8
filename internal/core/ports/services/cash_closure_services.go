package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// CashClosureReaderSvc defines read operations for drawer reconciliation
type CashClosureReaderSvc interface {
	// GetOpenShiftSummary computes the expected cash position since the last closure.
	GetOpenShiftSummary(ctx context.Context, tenantID string) (*domain.ShiftSummary, error)

	ListClosures(ctx context.Context, tenantID string, params dto.ListClosuresParams) (*dto.ListClosuresResponse, error)

	GetClosureByID(ctx context.Context, tenantID, closureID string) (*domain.CashClosure, error)
}

// CashClosureWriterSvc defines the shift close
type CashClosureWriterSvc interface {
	// CloseShift reconciles the physical count with the server-computed expectation.
	CloseShift(ctx context.Context, tenantID string, req dto.CloseShiftRequest, userID string) (*domain.CashClosure, error)
}

// CashClosureSvcFacade combines all reconciliation service interfaces
type CashClosureSvcFacade interface {
	CashClosureReaderSvc
	CashClosureWriterSvc
}
