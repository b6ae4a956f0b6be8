package domain

import (
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
)

var (
	// ErrDebtSettled is returned for any state change attempted on a SETTLED debt.
	ErrDebtSettled = fmt.Errorf("%w: debt is already settled", apperrors.ErrConflict)

	// ErrPaymentMethodRequired is returned when a receivable settles and the tenant has no
	// payment method to attribute the resulting sale to.
	ErrPaymentMethodRequired = fmt.Errorf("%w: no payment method available for sale", apperrors.ErrValidation)
)
