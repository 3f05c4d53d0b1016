package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pension-admin/internal/core/domain"
)

func contributionListing(w http.ResponseWriter) {
	w.Write([]byte(`{"content":[
		{"id":1,"memberId":10,"amount":5000,"status":"COMPLETED"},
		{"id":2,"memberId":11,"amount":7500,"status":"PENDING"},
		{"id":3,"memberId":10,"amount":2500,"status":"COMPLETED"}
	],"page":0,"size":1000,"totalElements":3,"totalPages":1,"last":true}`))
}

func TestContributionGetByIDFallbackHit(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contributions/2":
			w.WriteHeader(http.StatusNotFound)
		case "/contributions":
			contributionListing(w)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	contribution, err := NewContributionService(api).GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected fallback hit, got: %v", err)
	}
	if contribution.ID != 2 || contribution.MemberID != 11 {
		t.Errorf("expected contribution 2, got %+v", contribution)
	}
}

func TestContributionGetByIDFallbackMiss(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contributions/99":
			w.WriteHeader(http.StatusNotFound)
		case "/contributions":
			contributionListing(w)
		}
	})

	_, err := NewContributionService(api).GetByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for fallback miss, got: %v", err)
	}
}

func TestContributionGetByMemberFallbackFilters(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contributions/member/10":
			w.WriteHeader(http.StatusNotFound)
		case "/contributions":
			contributionListing(w)
		}
	})

	contributions, err := NewContributionService(api).GetByMember(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected fallback to succeed, got: %v", err)
	}
	if len(contributions) != 2 {
		t.Fatalf("expected 2 contributions for member 10, got %d", len(contributions))
	}
	for _, c := range contributions {
		if c.MemberID != 10 {
			t.Errorf("expected only member 10, got member %d", c.MemberID)
		}
	}
}

func TestContributionUpdateStatusNotImplemented(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := NewContributionService(api).UpdateStatus(context.Background(), 1, domain.ContributionCompleted)
	if !errors.Is(err, domain.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got: %v", err)
	}
}

func TestContributionDeleteNotImplementedOn405(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	err := NewContributionService(api).Delete(context.Background(), 1)
	if !errors.Is(err, domain.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented on 405, got: %v", err)
	}
}

func TestContributionDeleteSurfacesOtherErrors(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := NewContributionService(api).Delete(context.Background(), 1)
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied to pass through, got: %v", err)
	}
}
