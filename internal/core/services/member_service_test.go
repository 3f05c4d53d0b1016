package services

import (
	"context"
	"net/http"
	"testing"

	"pension-admin/internal/pkg/pagination"
)

func TestMemberSearchFallsBackToListing(t *testing.T) {
	var listingQuery string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/members/search":
			w.WriteHeader(http.StatusNotFound)
		case "/members":
			listingQuery = r.URL.RawQuery
			w.Write([]byte(`{"content":[{"id":3,"firstName":"Ade","lastName":"Bello"}],"page":0,"size":100,"totalElements":1,"totalPages":1,"last":true}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	members, err := NewMemberService(api).Search(context.Background(), "ade")
	if err != nil {
		t.Fatalf("expected fallback to succeed, got: %v", err)
	}
	if len(members) != 1 || members[0].ID != 3 {
		t.Errorf("expected the fallback listing's member, got %+v", members)
	}
	if listingQuery == "" {
		t.Fatal("expected the listing endpoint to be hit")
	}
}

func TestMemberSearchDirectEndpoint(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/members/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "bello" {
			t.Errorf("expected query param 'bello', got %q", r.URL.Query().Get("query"))
		}
		w.Write([]byte(`[{"id":5,"firstName":"Bolu","lastName":"Bello"}]`))
	})

	members, err := NewMemberService(api).Search(context.Background(), "bello")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(members) != 1 || members[0].ID != 5 {
		t.Errorf("expected direct result, got %+v", members)
	}
}

func TestMemberStatsFallsBackToEmpty(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	stats, err := NewMemberService(api).Stats(context.Background(), 9)
	if err != nil {
		t.Fatalf("expected empty stats, got error: %v", err)
	}
	if stats.ContributionCount != 0 || stats.TotalContributions != "₦0.00" {
		t.Errorf("expected zero-valued stats, got %+v", stats)
	}
}

func TestMemberGetAllPassesPagination(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("size") != "10" {
			t.Errorf("expected page=2 size=10, got %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"content":[],"page":2,"size":10,"totalElements":0,"totalPages":0,"last":true}`))
	})

	page, err := NewMemberService(api).GetAll(context.Background(), pagination.Params{Page: 2, Size: 10})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if page.Page != 2 || !page.Last {
		t.Errorf("unexpected page envelope: %+v", page)
	}
}
