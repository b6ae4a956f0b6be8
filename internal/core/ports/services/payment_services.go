package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// PaymentSvcFacade runs the abono state machine.
type PaymentSvcFacade interface {
	// ApplyPayment applies a partial or final payment and its side effects as one unit of work.
	ApplyPayment(ctx context.Context, tenantID, debtID string, req dto.ApplyPaymentRequest, userID string) (*domain.PaymentResult, error)
}
