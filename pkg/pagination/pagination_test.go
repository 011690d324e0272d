package pagination

import (
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	p := New(0, 0)

	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected default offset 0, got %d", p.Offset)
	}
}

func TestNew_CustomValues(t *testing.T) {
	p := New(50, 10)

	if p.Limit != 50 {
		t.Errorf("expected limit 50, got %d", p.Limit)
	}
	if p.Offset != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset)
	}
}

func TestNew_MaxLimit(t *testing.T) {
	p := New(500, 0)

	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestNew_NegativeOffset(t *testing.T) {
	p := New(10, -5)

	if p.Offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", p.Offset)
	}
}

func TestParams_Bounds(t *testing.T) {
	tests := []struct {
		name               string
		p                  Params
		total              int
		wantStart, wantEnd int
	}{
		{"first page", Params{Limit: 10, Offset: 0}, 25, 0, 10},
		{"last partial page", Params{Limit: 10, Offset: 20}, 25, 20, 25},
		{"offset past end", Params{Limit: 10, Offset: 40}, 25, 25, 25},
		{"empty collection", Params{Limit: 10, Offset: 0}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.p.Bounds(tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Bounds(%d) = (%d, %d), want (%d, %d)", tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got := Page(items, Params{Limit: 2, Offset: 3})
	if len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Errorf("Page() = %v, want [4 5]", got)
	}
	if got := Page(items, Params{Limit: 2, Offset: 9}); len(got) != 0 {
		t.Errorf("expected empty page past the end, got %v", got)
	}
}

func TestParams_HasNext(t *testing.T) {
	p := Params{Limit: 10, Offset: 0}
	if !p.HasNext(25) {
		t.Error("expected HasNext to be true")
	}
	p = Params{Limit: 10, Offset: 20}
	if p.HasNext(25) {
		t.Error("expected HasNext to be false")
	}
}

func TestParams_HasPrevious(t *testing.T) {
	if (Params{Limit: 10, Offset: 0}).HasPrevious() {
		t.Error("expected HasPrevious to be false at offset 0")
	}
	if !(Params{Limit: 10, Offset: 10}).HasPrevious() {
		t.Error("expected HasPrevious to be true")
	}
}

func TestParams_PreviousOffset(t *testing.T) {
	p := Params{Limit: 10, Offset: 5}
	if p.PreviousOffset() != 0 {
		t.Errorf("expected previous offset 0, got %d", p.PreviousOffset())
	}
	p = Params{Limit: 10, Offset: 25}
	if p.PreviousOffset() != 15 {
		t.Errorf("expected previous offset 15, got %d", p.PreviousOffset())
	}
}

func TestParams_Footer(t *testing.T) {
	p := Params{Limit: 10, Offset: 0}
	if got, want := p.Footer(25), "Showing 1-10 of 25. Next page: --offset 10 --limit 10"; got != want {
		t.Errorf("Footer() = %q, want %q", got, want)
	}
	p = Params{Limit: 10, Offset: 10}
	if got, want := p.Footer(25), "Showing 11-20 of 25. Previous page: --offset 0 --limit 10 Next page: --offset 20 --limit 10"; got != want {
		t.Errorf("Footer() = %q, want %q", got, want)
	}
	p = Params{Limit: 10, Offset: 20}
	if got, want := p.Footer(25), "Showing 21-25 of 25. Previous page: --offset 10 --limit 10"; got != want {
		t.Errorf("Footer() = %q, want %q", got, want)
	}
	if got, want := p.Footer(0), "No records in range (total 0)."; got != want {
		t.Errorf("Footer() = %q, want %q", got, want)
	}
}
