package pagination

import "testing"

func TestNormalizeClampsValues(t *testing.T) {
	p := Params{Page: -3, Size: 0}.Normalize()
	if p.Page != 0 {
		t.Errorf("expected page 0, got %d", p.Page)
	}
	if p.Size != DefaultSize {
		t.Errorf("expected default size %d, got %d", DefaultSize, p.Size)
	}

	p = Params{Page: 2, Size: 5000}.Normalize()
	if p.Size != MaxSize {
		t.Errorf("expected size clamped to %d, got %d", MaxSize, p.Size)
	}
	if p.Page != 2 {
		t.Errorf("expected page 2 untouched, got %d", p.Page)
	}
}

func TestValuesEncoding(t *testing.T) {
	values := Params{Page: 1, Size: 50, Sort: "createdAt,desc", Search: "ade"}.Values()

	if values.Get("page") != "1" {
		t.Errorf("expected page '1', got %q", values.Get("page"))
	}
	if values.Get("size") != "50" {
		t.Errorf("expected size '50', got %q", values.Get("size"))
	}
	if values.Get("sort") != "createdAt,desc" {
		t.Errorf("expected sort param, got %q", values.Get("sort"))
	}
	if values.Get("search") != "ade" {
		t.Errorf("expected search param, got %q", values.Get("search"))
	}
}

func TestValuesOmitsEmptyOptionals(t *testing.T) {
	values := Params{}.Values()

	if _, ok := values["sort"]; ok {
		t.Error("expected no sort param for empty sort")
	}
	if _, ok := values["search"]; ok {
		t.Error("expected no search param for empty search")
	}
	if values.Get("page") != "0" || values.Get("size") != "20" {
		t.Errorf("expected defaults page=0 size=20, got page=%s size=%s",
			values.Get("page"), values.Get("size"))
	}
}
