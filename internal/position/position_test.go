package position

import (
	"testing"

	"github.com/go-test/deep"
)

func TestPageCompare(t *testing.T) {
	tests := []struct {
		a, b Page
		want int
	}{
		{Page{Line: 0, Column: 0}, Page{Line: 0, Column: 0}, 0},
		{Page{Line: 0, Column: 1}, Page{Line: 0, Column: 2}, -1},
		{Page{Line: 1, Column: 0}, Page{Line: 0, Column: 99}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPageAdd(t *testing.T) {
	base := Page{Line: 2, Column: 5}
	if got := base.Add(Page{Line: 0, Column: 3}); got != (Page{Line: 2, Column: 8}) {
		t.Errorf("same-line add: got %v, want {2 8}", got)
	}
	if got := base.Add(Page{Line: 1, Column: 0}); got != (Page{Line: 3, Column: 0}) {
		t.Errorf("line-advancing add: got %v, want {3 0}", got)
	}
}

func TestPositionCompareAndLess(t *testing.T) {
	a := New(0, 0, 0)
	b := New(5, 0, 5)
	if !a.Less(b) {
		t.Errorf("%v should be less than %v", a, b)
	}
	if b.Less(a) {
		t.Errorf("%v should not be less than %v", b, a)
	}
	if !a.LessEqual(a) {
		t.Errorf("%v should be less-equal to itself", a)
	}
}

func TestPositionIsZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Error("Zero.IsZero() = false")
	}
	if New(1, 0, 1).IsZero() {
		t.Error("New(1, 0, 1).IsZero() = true")
	}
}

func TestPositionAdd(t *testing.T) {
	base := New(10, 1, 3)
	got := base.Add(Position{Byte: 2, Page: Page{Line: 0, Column: 2}})
	want := New(12, 1, 5)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPositionAddDeepEqual(t *testing.T) {
	base := New(10, 1, 3)
	got := base.Add(Position{Byte: 2, Page: Page{Line: 1, Column: 0}})
	want := New(12, 2, 0)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("line-advancing add diverged: %v", diff)
	}
}
