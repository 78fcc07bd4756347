package render

import (
	"errors"
	"image"
	"testing"
)

func TestFrameRect(t *testing.T) {
	cases := []struct {
		name  string
		frame int
		cols  int
		want  image.Rectangle
	}{
		{"first", 0, 4, image.Rect(0, 0, 16, 16)},
		{"same_row", 3, 4, image.Rect(48, 0, 64, 16)},
		{"wraps", 5, 4, image.Rect(16, 16, 32, 32)},
		{"single_column", 2, 1, image.Rect(0, 32, 16, 48)},
		{"negative", -1, 4, image.Rectangle{}},
		{"no_columns", 0, 0, image.Rectangle{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FrameRect(c.frame, c.cols, 16, 16); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestAtlasUnknownSheet(t *testing.T) {
	a := NewAtlas()
	if _, err := a.Frame("missing", 0); !errors.Is(err, ErrUnknownSheet) {
		t.Fatalf("expected ErrUnknownSheet, got %v", err)
	}
	if err := a.Register("", nil, 16, 16); err == nil {
		t.Fatal("expected error registering without a name")
	}
	var nilAtlas *Atlas
	if _, ok := nilAtlas.Sheet("x"); ok {
		t.Fatal("nil atlas should have no sheets")
	}
}
