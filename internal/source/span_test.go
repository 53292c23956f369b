package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans merge to hull",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span is a no-op",
			a:        Span{File: 1, Start: 10, End: 40},
			b:        Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "other file is ignored",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "empty span extends start",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 5, End: 5},
			expected: Span{File: 1, Start: 5, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 7, End: 7}
	if !s.Empty() || s.Len() != 0 {
		t.Errorf("empty span misreported: Empty=%v Len=%d", s.Empty(), s.Len())
	}
	s.End = 12
	if s.Empty() || s.Len() != 5 {
		t.Errorf("non-empty span misreported: Empty=%v Len=%d", s.Empty(), s.Len())
	}
}
