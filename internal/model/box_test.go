package model

import "testing"

func TestFitsInsideStrictContainment(t *testing.T) {
	below := Orientation{Width: 4, Depth: 6, Height: 2}

	tests := []struct {
		name string
		o    Orientation
		want bool
	}{
		{"strictly smaller", Orientation{Width: 3, Depth: 5}, true},
		{"flush width", Orientation{Width: 4, Depth: 5}, false},
		{"flush depth", Orientation{Width: 3, Depth: 6}, false},
		{"flush both", Orientation{Width: 4, Depth: 6}, false},
		{"wider", Orientation{Width: 5, Depth: 5}, false},
		{"smaller area but not contained", Orientation{Width: 1, Depth: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.FitsInside(below); got != tt.want {
				t.Errorf("FitsInside(%v in %v) = %v, want %v", tt.o, below, got, tt.want)
			}
		})
	}
}

func TestFootprintArea(t *testing.T) {
	o := Orientation{Width: 3, Depth: 7, Height: 2}
	if got := o.FootprintArea(); got != 21 {
		t.Errorf("FootprintArea() = %d, want 21", got)
	}
}

func TestNewBoxGeneratesID(t *testing.T) {
	b := NewBox("Test", 1, 2, 3)
	if b.ID == "" {
		t.Error("NewBox should generate a non-empty ID")
	}
	if len(b.ID) != 8 {
		t.Errorf("expected 8-character ID, got %q", b.ID)
	}
	b2 := NewBox("Test", 1, 2, 3)
	if b.ID == b2.ID {
		t.Error("two boxes should not share an ID")
	}
}
