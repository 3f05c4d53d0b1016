package services

import (
	"context"
	"net/url"

	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/core/domain"
)

// DefaultTrendPeriod is used when no period is given for contribution trends.
const DefaultTrendPeriod = "12months"

// DashboardService handles analytics for the admin dashboard
type DashboardService struct {
	api *rest.Client
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(api *rest.Client) *DashboardService {
	return &DashboardService{api: api}
}

// Stats fetches the aggregate dashboard figures.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := s.api.Get(ctx, "/analytics/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ContributionTrends fetches contribution chart data for the given period.
func (s *DashboardService) ContributionTrends(ctx context.Context, period string) (*domain.ChartData, error) {
	if period == "" {
		period = DefaultTrendPeriod
	}
	values := url.Values{}
	values.Set("period", period)

	var chart domain.ChartData
	if err := s.api.Get(ctx, "/analytics/contributions/trends", values, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// MemberGrowth fetches member growth chart data.
func (s *DashboardService) MemberGrowth(ctx context.Context) (*domain.ChartData, error) {
	var chart domain.ChartData
	if err := s.api.Get(ctx, "/analytics/members/growth", nil, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// ClaimAnalytics fetches claim breakdowns. The shape varies by backend
// version, so it is returned untyped.
func (s *DashboardService) ClaimAnalytics(ctx context.Context) (map[string]any, error) {
	analytics := map[string]any{}
	if err := s.api.Get(ctx, "/analytics/claims", nil, &analytics); err != nil {
		return nil, err
	}
	return analytics, nil
}
