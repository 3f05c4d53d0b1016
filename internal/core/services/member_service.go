package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/core/domain"
	"pension-admin/internal/pkg/pagination"
)

// MemberService handles member CRUD and search
type MemberService struct {
	api *rest.Client
}

// NewMemberService creates a new member service
func NewMemberService(api *rest.Client) *MemberService {
	return &MemberService{api: api}
}

// MemberInput represents the fields accepted when creating or updating a member
type MemberInput struct {
	FirstName        string                  `json:"firstName"`
	LastName         string                  `json:"lastName"`
	Email            string                  `json:"email"`
	PhoneNumber      string                  `json:"phoneNumber"`
	DateOfBirth      string                  `json:"dateOfBirth"`
	Gender           string                  `json:"gender"`
	Address          string                  `json:"address"`
	City             string                  `json:"city"`
	State            string                  `json:"state"`
	Country          string                  `json:"country"`
	PostalCode       string                  `json:"postalCode"`
	EmploymentStatus domain.EmploymentStatus `json:"employmentStatus"`
	AccountType      domain.AccountType      `json:"accountType"`
}

// MemberStats represents a member's contribution and benefit statistics
type MemberStats struct {
	TotalContributions   string `json:"totalContributions"`
	ContributionCount    int64  `json:"contributionCount"`
	TotalBenefits        string `json:"totalBenefits"`
	BenefitCount         int64  `json:"benefitCount"`
	LastContributionDate string `json:"lastContributionDate"`
}

// GetAll fetches a page of members.
func (s *MemberService) GetAll(ctx context.Context, params pagination.Params) (*pagination.Page[domain.Member], error) {
	var page pagination.Page[domain.Member]
	if err := s.api.Get(ctx, "/members", params.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID fetches a single member.
func (s *MemberService) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	var member domain.Member
	if err := s.api.Get(ctx, fmt.Sprintf("/members/%d", id), nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Create creates a new member. The backend sends the welcome email.
func (s *MemberService) Create(ctx context.Context, input *MemberInput) (*domain.Member, error) {
	var member domain.Member
	if err := s.api.Post(ctx, "/members", input, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates an existing member.
func (s *MemberService) Update(ctx context.Context, id int64, input *MemberInput) (*domain.Member, error) {
	var member domain.Member
	if err := s.api.Put(ctx, fmt.Sprintf("/members/%d", id), input, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Delete soft-deletes a member.
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/members/%d", id))
}

// Search searches members by name, email or phone. The dedicated search
// route is not deployed on every backend yet; a 404 falls back to the
// paginated listing with a search filter, returning the same shape.
func (s *MemberService) Search(ctx context.Context, query string) ([]domain.Member, error) {
	values := url.Values{}
	values.Set("query", query)

	var members []domain.Member
	err := s.api.Get(ctx, "/members/search", values, &members)
	if err == nil {
		return members, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	log.Println("member search endpoint not found, using paginated fallback")
	page, err := s.GetAll(ctx, pagination.Params{Page: 0, Size: pagination.MaxSize, Search: query})
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

// Stats fetches a member's contribution and benefit statistics. Backends
// without the stats route yield zero-valued stats rather than an error.
func (s *MemberService) Stats(ctx context.Context, id int64) (*MemberStats, error) {
	var stats MemberStats
	err := s.api.Get(ctx, fmt.Sprintf("/members/%d/stats", id), nil, &stats)
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	log.Println("member stats endpoint not found, returning empty stats")
	return &MemberStats{
		TotalContributions: "₦0.00",
		TotalBenefits:      "₦0.00",
	}, nil
}
