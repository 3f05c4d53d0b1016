package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/core/domain"
	"pension-admin/internal/pkg/pagination"
)

// fallbackFetchSize is how many records the broad listing pulls when a
// narrow endpoint is missing and the result has to be filtered locally:
// the largest page the backend accepts.
const fallbackFetchSize = pagination.MaxSize

// ContributionService handles contribution queries and recording
type ContributionService struct {
	api *rest.Client
}

// NewContributionService creates a new contribution service
func NewContributionService(api *rest.Client) *ContributionService {
	return &ContributionService{api: api}
}

// ContributionInput represents the fields accepted when recording a contribution
type ContributionInput struct {
	MemberID         int64                   `json:"memberId"`
	Amount           float64                 `json:"amount"`
	ContributionType domain.ContributionType `json:"contributionType"`
	PaymentMethod    string                  `json:"paymentMethod"`
	Description      string                  `json:"description,omitempty"`
}

// GetAll fetches a page of contributions.
func (s *ContributionService) GetAll(ctx context.Context, params pagination.Params) (*pagination.Page[domain.Contribution], error) {
	var page pagination.Page[domain.Contribution]
	if err := s.api.Get(ctx, "/contributions", params.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID fetches a single contribution. Backends without the by-id route
// answer 404, in which case the full listing is searched instead; a miss
// there is reported as not found. The two 404 meanings (missing route,
// missing record) are indistinguishable on the wire, so the fallback runs
// for both and the listing decides.
func (s *ContributionService) GetByID(ctx context.Context, id int64) (*domain.Contribution, error) {
	var contribution domain.Contribution
	err := s.api.Get(ctx, fmt.Sprintf("/contributions/%d", id), nil, &contribution)
	if err == nil {
		return &contribution, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	log.Println("contribution by-id endpoint not found, using fallback")
	page, err := s.GetAll(ctx, pagination.Params{Page: 0, Size: fallbackFetchSize})
	if err != nil {
		return nil, err
	}
	for i := range page.Content {
		if page.Content[i].ID == id {
			return &page.Content[i], nil
		}
	}
	return nil, fmt.Errorf("contribution %d: %w", id, domain.ErrNotFound)
}

// GetByMember fetches all contributions for one member, falling back to
// the full listing filtered locally when the member route is missing.
func (s *ContributionService) GetByMember(ctx context.Context, memberID int64) ([]domain.Contribution, error) {
	var contributions []domain.Contribution
	err := s.api.Get(ctx, fmt.Sprintf("/contributions/member/%d", memberID), nil, &contributions)
	if err == nil {
		return contributions, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	log.Println("contributions by-member endpoint not found, using fallback")
	page, err := s.GetAll(ctx, pagination.Params{Page: 0, Size: fallbackFetchSize})
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Contribution, 0)
	for _, c := range page.Content {
		if c.MemberID == memberID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Create records a new contribution.
func (s *ContributionService) Create(ctx context.Context, input *ContributionInput) (*domain.Contribution, error) {
	var contribution domain.Contribution
	if err := s.api.Post(ctx, "/contributions", input, &contribution); err != nil {
		return nil, err
	}
	return &contribution, nil
}

// UpdateStatus moves a contribution to a new status. There is no safe
// client-side fallback for a write, so a missing route surfaces as an
// explicit not-implemented error.
func (s *ContributionService) UpdateStatus(ctx context.Context, id int64, status domain.ContributionStatus) (*domain.Contribution, error) {
	body := map[string]domain.ContributionStatus{"status": status}

	var contribution domain.Contribution
	err := s.api.Patch(ctx, fmt.Sprintf("/contributions/%d/status", id), body, &contribution)
	if err == nil {
		return &contribution, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("update contribution status: %w", domain.ErrNotImplemented)
	}
	return nil, err
}

// Delete removes a contribution. Some backends answer 404 and some 405
// while the route is missing; both surface as not-implemented.
func (s *ContributionService) Delete(ctx context.Context, id int64) error {
	err := s.api.Delete(ctx, fmt.Sprintf("/contributions/%d", id))
	if err == nil {
		return nil
	}

	var apiErr *rest.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusMethodNotAllowed {
			return fmt.Errorf("delete contribution: %w", domain.ErrNotImplemented)
		}
	}
	return err
}
