package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{5, 10, 0, 5}, // swapped bounds
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestMapU16(t *testing.T) {
	cases := []struct {
		x, inMin, inMax, outMin, outMax, want uint16
	}{
		{0, 0, 1000, 124, 2499, 124},
		{1000, 0, 1000, 124, 2499, 2499},
		{500, 0, 1000, 124, 2499, 1311}, // truncating division
		{0, 0, 0, 7, 9, 7},              // degenerate in range
		{1200, 0, 1000, 124, 2499, 2499},
		{0, 100, 200, 10, 20, 10}, // below in range clamps low
	}
	for _, c := range cases {
		got := MapU16(c.x, c.inMin, c.inMax, c.outMin, c.outMax)
		if got != c.want {
			t.Errorf("MapU16(%d,[%d..%d]->[%d..%d]) = %d, want %d",
				c.x, c.inMin, c.inMax, c.outMin, c.outMax, got, c.want)
		}
	}
}
