package encode

import "testing"

func TestFormatCanonicalFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0, "0"},
		{1, "1"},
		{-1, "-1"},
		{3.14, "3.14"},
		{100, "100"},
		{-0.5, "-0.5"},
		{1e-5, "0.00001"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1e21, "-1e+21"},
		{1.5e21, "1.5e+21"},
	}
	for _, c := range cases {
		if got := formatCanonicalFloat(c.in); got != c.want {
			t.Errorf("formatCanonicalFloat(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
