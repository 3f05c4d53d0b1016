package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/core/domain"
)

// allowedRedirectHosts are the only hosts a payment authorization URL may
// point at, matched exactly or as a subdomain. This is an open-redirect
// defense: a URL merely containing a gateway name, or served from a host
// that ends in one, does not pass.
var allowedRedirectHosts = []string{
	"paystack.com",
	"flutterwave.com",
}

// PaymentService handles gateway payments
type PaymentService struct {
	api *rest.Client
}

// NewPaymentService creates a new payment service
func NewPaymentService(api *rest.Client) *PaymentService {
	return &PaymentService{api: api}
}

// PaymentInput represents the fields accepted when initializing a payment
type PaymentInput struct {
	MemberID      int64   `json:"memberId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type initializeRequest struct {
	PaymentInput
	Gateway         domain.Gateway `json:"gateway"`
	ClientReference string         `json:"clientReference"`
}

// InitializeResponse represents a freshly initialized gateway transaction
type InitializeResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Reference        string `json:"reference"`
}

// Initialize starts a payment on the given gateway. The authorization URL
// returned by the backend is validated against the gateway allow-list
// before it is handed to the caller; an initialization pointing anywhere
// else is refused.
func (s *PaymentService) Initialize(ctx context.Context, gateway domain.Gateway, input *PaymentInput) (*InitializeResponse, error) {
	body := initializeRequest{
		PaymentInput:    *input,
		Gateway:         gateway,
		ClientReference: uuid.NewString(),
	}

	var resp InitializeResponse
	if err := s.api.Post(ctx, "/payments/initialize", body, &resp); err != nil {
		return nil, err
	}

	if resp.AuthorizationURL != "" {
		if err := ValidateRedirectURL(resp.AuthorizationURL); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Verify confirms a transaction by its gateway reference.
func (s *PaymentService) Verify(ctx context.Context, reference string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.api.Get(ctx, "/payments/verify/"+url.PathEscape(reference), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetAll fetches every payment.
func (s *PaymentService) GetAll(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := s.api.Get(ctx, "/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetByID fetches a single payment.
func (s *PaymentService) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.api.Get(ctx, fmt.Sprintf("/payments/%d", id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByMember fetches one member's payments, falling back to the full
// listing filtered locally when the member route is missing.
func (s *PaymentService) GetByMember(ctx context.Context, memberID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := s.api.Get(ctx, fmt.Sprintf("/payments/member/%d", memberID), nil, &payments)
	if err == nil {
		return payments, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	log.Println("payments by-member endpoint not found, using fallback")
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Payment, 0)
	for _, p := range all {
		if p.MemberID == memberID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// ValidateRedirectURL checks that a gateway redirect target is https and
// that its host is an allow-listed gateway domain or a subdomain of one.
func ValidateRedirectURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("redirect url %q: %w", raw, domain.ErrUntrustedRedirect)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("redirect url %q is not https: %w", raw, domain.ErrUntrustedRedirect)
	}

	host := strings.ToLower(parsed.Hostname())
	for _, allowed := range allowedRedirectHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}
	return fmt.Errorf("redirect host %q: %w", host, domain.ErrUntrustedRedirect)
}
