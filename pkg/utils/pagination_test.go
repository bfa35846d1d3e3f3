package utils

import "testing"

func TestPaginationOffset(t *testing.T) {
	cases := []struct {
		name string
		page int
		size int
		want int
	}{
		{"first page default", 0, 10, 0},
		{"explicit first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"third page small size", 3, 5, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Pagination{Page: tc.page, Size: tc.size}
			if got := p.GetOffset(); got != tc.want {
				t.Errorf("GetOffset() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSetSizeBounds(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"empty uses default", "", 10, false},
		{"explicit size", "25", 25, false},
		{"oversized clamps to max", "5000", 100, false},
		{"zero rejected", "0", 0, true},
		{"negative rejected", "-5", 0, true},
		{"garbage rejected", "ten", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Pagination{}
			err := p.SetSize(tc.query)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("SetSize(%q) succeeded, want error", tc.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetSize(%q): %v", tc.query, err)
			}
			if p.Size != tc.want {
				t.Errorf("size = %d, want %d", p.Size, tc.want)
			}
		})
	}
}

func TestSetPageRejectsNegative(t *testing.T) {
	p := &Pagination{}
	if err := p.SetPage("-1"); err == nil {
		t.Fatal("SetPage(-1) succeeded, want error")
	}
	if err := p.SetPage("3"); err != nil {
		t.Fatalf("SetPage(3): %v", err)
	}
	if p.Page != 3 {
		t.Errorf("page = %d, want 3", p.Page)
	}
}

func TestGetHasMore(t *testing.T) {
	if !GetHasMore(1, 25, 10) {
		t.Error("page 1 of 25 items with size 10 should have more")
	}
	if GetHasMore(3, 25, 10) {
		t.Error("page 3 of 25 items with size 10 should not have more")
	}
}

func TestGetTotalPages(t *testing.T) {
	if got := GetTotalPages(25, 10); got != 3 {
		t.Errorf("GetTotalPages(25, 10) = %d, want 3", got)
	}
	if got := GetTotalPages(20, 10); got != 2 {
		t.Errorf("GetTotalPages(20, 10) = %d, want 2", got)
	}
}
