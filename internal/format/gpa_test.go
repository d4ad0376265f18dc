package format

import "testing"

func TestGPATruncatesToTwoDecimals(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"whole number", 3.0, 3.0},
		{"already two decimals", 3.21, 3.21},
		{"truncates not rounds", 3.219, 3.21},
		{"truncates not rounds up", 2.999, 2.99},
		{"zero", 0.0, 0.0},
		{"numeric string", "3.456", 3.45},
		{"int input", 4, 4.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GPA(tc.in); got != tc.want {
				t.Errorf("GPA(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestGPAGarbageInputIsZero(t *testing.T) {
	for _, in := range []any{nil, "abc", "", []int{1}, map[string]int{}} {
		if got := GPA(in); got != 0 {
			t.Errorf("GPA(%v) = %v, want 0", in, got)
		}
	}
}

func TestGPANeverExceedsInput(t *testing.T) {
	for _, x := range []float64{0, 0.009, 1.555, 2.71828, 3.9999, 4.0} {
		if got := GPA(x); got > x {
			t.Errorf("GPA(%v) = %v, exceeds input", x, got)
		}
	}
}

func TestGPAIdempotent(t *testing.T) {
	for _, x := range []float64{0, 1.23, 2.999, 3.456789, 4.0} {
		once := GPA(x)
		if twice := GPA(once); twice != once {
			t.Errorf("GPA(GPA(%v)) = %v, want %v", x, twice, once)
		}
	}
}
