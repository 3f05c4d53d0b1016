package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/core/domain"
	"pension-admin/internal/pkg/pagination"
)

// BenefitService handles benefit claim queries and the review workflow
type BenefitService struct {
	api *rest.Client
}

// NewBenefitService creates a new benefit service
func NewBenefitService(api *rest.Client) *BenefitService {
	return &BenefitService{api: api}
}

// ClaimInput represents the fields accepted when raising a claim
type ClaimInput struct {
	MemberID            int64            `json:"memberId"`
	ClaimType           domain.ClaimType `json:"claimType"`
	RequestedAmount     float64          `json:"requestedAmount"`
	Reason              string           `json:"reason"`
	SupportingDocuments string           `json:"supportingDocuments,omitempty"`
}

// ApprovalInput represents the reviewer's decision on a pending claim
type ApprovalInput struct {
	ApprovedAmount float64 `json:"approvedAmount"`
	ReviewComments string  `json:"reviewComments"`
}

// GetAll fetches a page of benefit claims.
func (s *BenefitService) GetAll(ctx context.Context, params pagination.Params) (*pagination.Page[domain.BenefitClaim], error) {
	var page pagination.Page[domain.BenefitClaim]
	if err := s.api.Get(ctx, "/benefits/claims", params.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID fetches a single claim.
func (s *BenefitService) GetByID(ctx context.Context, id int64) (*domain.BenefitClaim, error) {
	var claim domain.BenefitClaim
	if err := s.api.Get(ctx, fmt.Sprintf("/benefits/claims/%d", id), nil, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetByMember fetches all claims raised by one member.
func (s *BenefitService) GetByMember(ctx context.Context, memberID int64) ([]domain.BenefitClaim, error) {
	var claims []domain.BenefitClaim
	if err := s.api.Get(ctx, fmt.Sprintf("/benefits/claims/member/%d", memberID), nil, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Create raises a new benefit claim.
func (s *BenefitService) Create(ctx context.Context, input *ClaimInput) (*domain.BenefitClaim, error) {
	var claim domain.BenefitClaim
	if err := s.api.Post(ctx, "/benefits/claims", input, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// Approve approves a pending claim. The backend rejects the call with 422
// if the claim has already left PENDING.
func (s *BenefitService) Approve(ctx context.Context, id int64, input *ApprovalInput) (*domain.BenefitClaim, error) {
	var claim domain.BenefitClaim
	if err := s.api.Post(ctx, fmt.Sprintf("/benefits/claims/%d/approve", id), input, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// Reject rejects a pending claim with reviewer comments.
func (s *BenefitService) Reject(ctx context.Context, id int64, reviewComments string) (*domain.BenefitClaim, error) {
	body := map[string]string{"reviewComments": reviewComments}

	var claim domain.BenefitClaim
	if err := s.api.Post(ctx, fmt.Sprintf("/benefits/claims/%d/reject", id), body, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// Cancel cancels a claim. The cancel route is not deployed on most
// backends yet; as a write it has no safe fallback, so a missing route
// surfaces as an explicit not-implemented error.
func (s *BenefitService) Cancel(ctx context.Context, id int64) error {
	err := s.api.Post(ctx, fmt.Sprintf("/benefits/claims/%d/cancel", id), nil, nil)
	if err == nil {
		return nil
	}

	var apiErr *rest.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusMethodNotAllowed {
			return fmt.Errorf("cancel claim: %w", domain.ErrNotImplemented)
		}
	}
	return err
}
