package text

import "testing"

func TestNewRange(t *testing.T) {
	r, err := NewRange("x", 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != 2 || r.End != 5 || r.Item != "x" || r.Tag != "" {
		t.Errorf("unexpected range %+v", r)
	}
	if r.Len() != 3 {
		t.Errorf("expected length 3, got %d", r.Len())
	}

	if _, err := NewRange("x", 5, 5); err != nil {
		t.Errorf("zero-length range should be legal: %v", err)
	}
	if _, err := NewRange("x", 5, 2); err == nil {
		t.Error("reversed range should be rejected")
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name                       string
		lStart, lEnd, rStart, rEnd int
		want                       bool
	}{
		{"overlapping", 0, 5, 3, 8, true},
		{"nested", 0, 9, 3, 6, true},
		{"identical", 2, 6, 2, 6, true},
		{"fully disjoint", 0, 3, 5, 8, false},
		{"touching end to start", 0, 3, 3, 6, false},
		{"zero-length at shared start", 3, 3, 3, 6, true},
		{"zero-length query at shared start", 3, 6, 3, 3, true},
		{"both zero-length at same point", 3, 3, 3, 3, true},
		{"zero-length at other's end", 3, 3, 0, 3, false},
		{"zero-length inside", 4, 4, 3, 6, true},
		{"zero-length before", 2, 2, 3, 6, false},
		{"both zero-length apart", 2, 2, 3, 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersect(tc.lStart, tc.lEnd, tc.rStart, tc.rEnd); got != tc.want {
				t.Errorf("Intersect(%d,%d,%d,%d) = %v, want %v", tc.lStart, tc.lEnd, tc.rStart, tc.rEnd, got, tc.want)
			}
			// the predicate is symmetric in its two intervals
			if got := Intersect(tc.rStart, tc.rEnd, tc.lStart, tc.lEnd); got != tc.want {
				t.Errorf("Intersect(%d,%d,%d,%d) = %v, want %v", tc.rStart, tc.rEnd, tc.lStart, tc.lEnd, got, tc.want)
			}
		})
	}
}

func TestIntersectSymmetryExhaustive(t *testing.T) {
	// every interval pair over a small domain
	const n = 5
	for a := 0; a <= n; a++ {
		for b := a; b <= n; b++ {
			for c := 0; c <= n; c++ {
				for d := c; d <= n; d++ {
					if Intersect(a, b, c, d) != Intersect(c, d, a, b) {
						t.Fatalf("Intersect not symmetric for [%d,%d) and [%d,%d)", a, b, c, d)
					}
				}
			}
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name                   string
		bStart, bEnd, tStart, tEnd int
		want                   bool
	}{
		{"nested", 0, 9, 3, 6, true},
		{"identical", 2, 6, 2, 6, true},
		{"target escapes right", 0, 5, 3, 8, false},
		{"target escapes left", 3, 8, 0, 5, false},
		{"disjoint", 0, 3, 5, 8, false},
		{"shared start", 2, 8, 2, 5, true},
		{"shared end different start", 2, 8, 5, 8, true},
		{"empty target inside", 2, 8, 5, 5, true},
		{"empty target at start", 2, 8, 2, 2, true},
		// shared end: containment needs both empty or both non-empty
		{"empty target at non-empty base end", 2, 8, 8, 8, false},
		{"empty base empty target coincident", 5, 5, 5, 5, true},
		{"non-empty target at empty base", 5, 5, 5, 6, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contains(tc.bStart, tc.bEnd, tc.tStart, tc.tEnd); got != tc.want {
				t.Errorf("Contains(%d,%d,%d,%d) = %v, want %v", tc.bStart, tc.bEnd, tc.tStart, tc.tEnd, got, tc.want)
			}
		})
	}
}

func FuzzIntersectSymmetry(f *testing.F) {
	f.Add(0, 5, 3, 8)
	f.Add(3, 3, 3, 6)
	f.Add(0, 0, 0, 0)
	f.Fuzz(func(t *testing.T, a, b, c, d int) {
		if Intersect(a, b, c, d) != Intersect(c, d, a, b) {
			t.Errorf("Intersect not symmetric for (%d,%d) and (%d,%d)", a, b, c, d)
		}
	})
}
