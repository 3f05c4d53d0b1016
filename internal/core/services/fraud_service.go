package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"runtime"
	"time"

	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/core/domain"
)

// apiEnvelope is the wrapper the ML endpoints put around their payloads.
type apiEnvelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// FraudService handles the ML-backed fraud detection and risk assessment
type FraudService struct {
	api *rest.Client
}

// NewFraudService creates a new fraud service
func NewFraudService(api *rest.Client) *FraudService {
	return &FraudService{api: api}
}

// FraudCheckInput represents a transaction submitted for fraud scoring
type FraudCheckInput struct {
	MemberID          int64   `json:"memberId"`
	Amount            float64 `json:"amount"`
	PaymentMethod     string  `json:"paymentMethod"`
	UserAgent         string  `json:"userAgent,omitempty"`
	DeviceFingerprint string  `json:"deviceFingerprint,omitempty"`
	Timestamp         string  `json:"timestamp,omitempty"`
}

// DetectFraud submits a transaction to the ML model for scoring.
func (s *FraudService) DetectFraud(ctx context.Context, input *FraudCheckInput) (*domain.FraudDetectionResult, error) {
	var envelope apiEnvelope[domain.FraudDetectionResult]
	if err := s.api.Post(ctx, "/v1/ml/fraud-detection", input, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// AssessMemberRisk fetches the ML model's standing risk profile for a member.
func (s *FraudService) AssessMemberRisk(ctx context.Context, memberID int64) (*domain.RiskAssessment, error) {
	var envelope apiEnvelope[domain.RiskAssessment]
	if err := s.api.Get(ctx, fmt.Sprintf("/v1/ml/risk-assessment/%d", memberID), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// CheckTransaction scores a transaction with client information filled in
// automatically, the way the dashboard submits its checks.
func (s *FraudService) CheckTransaction(ctx context.Context, memberID int64, amount float64, paymentMethod string) (*domain.FraudDetectionResult, error) {
	return s.DetectFraud(ctx, &FraudCheckInput{
		MemberID:          memberID,
		Amount:            amount,
		PaymentMethod:     paymentMethod,
		UserAgent:         clientUserAgent(),
		DeviceFingerprint: deviceFingerprint(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	})
}

func clientUserAgent() string {
	return fmt.Sprintf("pension-admin/1.0 (%s; %s)", runtime.GOOS, runtime.GOARCH)
}

// deviceFingerprint derives a stable identifier for this host, standing in
// for the browser fingerprint the dashboard sends.
func deviceFingerprint() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	sum := sha256.Sum256([]byte(hostname + "/" + runtime.GOOS + "/" + runtime.GOARCH))
	return hex.EncodeToString(sum[:])[:32]
}
