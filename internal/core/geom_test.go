package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        NewBox(0, 0, 25, 40),
			b:        NewBox(0, 0, 8, 8),
			expected: true,
		},
		{
			name:     "adjacent lanes",
			a:        NewBox(0, 0, 25, 40),
			b:        NewBox(120, 0, 25, 40),
			expected: false,
		},
		{
			name:     "touching on z edge (no overlap)",
			a:        NewBox(0, 0, 25, 40),
			b:        NewBox(0, 80, 25, 40),
			expected: false,
		},
		{
			name:     "touching on x edge (no overlap)",
			a:        NewBox(0, 0, 25, 40),
			b:        NewBox(50, 0, 25, 40),
			expected: false,
		},
		{
			name:     "just inside on z",
			a:        NewBox(0, 0, 25, 40),
			b:        NewBox(0, 79.999, 25, 40),
			expected: true,
		},
		{
			name:     "overlap on x only",
			a:        NewBox(0, 0, 25, 40),
			b:        NewBox(10, 200, 25, 40),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 100, 100),
			b:        NewBox(10, -10, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}

			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.1, 0.0, 1.0, 0.0},
		{12.0, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
