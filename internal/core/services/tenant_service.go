package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
}

var (
	_ portssvc.TenantSvcFacade        = (*tenantService)(nil)
	_ portssvc.PaymentMethodSvcFacade = (*tenantService)(nil)
)

// NewTenantService creates the service exposing tenants and their payment methods.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, options ...ServiceOption) *tenantService {
	return &tenantService{
		BaseService: newBaseService(options...),
		tenantRepo:  tenantRepo,
	}
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get tenant", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	methods, err := s.tenantRepo.ListPaymentMethods(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return methods, nil
}

func (s *tenantService) CreatePaymentMethod(ctx context.Context, tenantID string, req dto.CreatePaymentMethodRequest, userID string) (*domain.PaymentMethod, error) {
	name := strings.Join(strings.Fields(req.Name), " ")
	if name == "" {
		return nil, fmt.Errorf("%w: payment method name is required", apperrors.ErrValidation)
	}
	if name == domain.UnassignedMethod {
		return nil, fmt.Errorf("%w: %q is reserved", apperrors.ErrValidation, name)
	}

	if _, err := s.GetTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	existing, err := s.ListPaymentMethods(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	method := domain.PaymentMethod{
		MethodID: uuid.NewString(),
		TenantID: tenantID,
		Name:     name,
		IsCash:   req.IsCash,
		Position: len(existing),
	}
	if err := s.tenantRepo.SavePaymentMethod(ctx, method); err != nil {
		s.logUnexpected(ctx, err, "Failed to save payment method", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Payment method created",
		slog.String("method_id", method.MethodID),
		slog.String("name", method.Name),
		slog.String("user_id", userID))
	return &method, nil
}
