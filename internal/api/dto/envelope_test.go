package dto

import "testing"

func TestEnvelopeShapes(t *testing.T) {
	ok := OK("done", 42)
	if ok.Status != "success" || ok.Message != "done" || ok.Data != 42 {
		t.Fatalf("OK envelope: %+v", ok)
	}

	fail := Fail("broken", nil)
	if fail.Status != "error" || fail.Message != "broken" {
		t.Fatalf("Fail envelope: %+v", fail)
	}
}

func TestNewPage(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		pageSize    int
		totalCount  int64
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{"first of many", 1, 10, 45, 5, true, false},
		{"middle", 3, 10, 45, 5, true, true},
		{"last", 5, 10, 45, 5, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty", 1, 10, 0, 0, false, false},
		{"single partial", 1, 10, 3, 1, false, false},
	}
	for _, tc := range cases {
		got := NewPage(nil, tc.page, tc.pageSize, tc.totalCount)
		if got.TotalPages != tc.wantPages {
			t.Errorf("%s: totalPages = %d, want %d", tc.name, got.TotalPages, tc.wantPages)
		}
		if got.HasNext != tc.wantHasNext {
			t.Errorf("%s: hasNext = %v, want %v", tc.name, got.HasNext, tc.wantHasNext)
		}
		if got.HasPrevious != tc.wantHasPrev {
			t.Errorf("%s: hasPrevious = %v, want %v", tc.name, got.HasPrevious, tc.wantHasPrev)
		}
		if got.TotalCount != tc.totalCount || got.PageSize != tc.pageSize {
			t.Errorf("%s: count/size echoed wrong: %+v", tc.name, got)
		}
	}
}

func TestNewPageClampsInvalidInput(t *testing.T) {
	got := NewPage(nil, 0, -5, 100)
	if got.CurrentPage != 1 {
		t.Fatalf("currentPage: got %d, want 1", got.CurrentPage)
	}
	if got.PageSize != 20 {
		t.Fatalf("pageSize default: got %d, want 20", got.PageSize)
	}
}
