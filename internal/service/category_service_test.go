package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Housing", "housing"},
		{"Buy & Sell", "buy-sell"},
		{"  Campus Events  ", "campus-events"},
		{"C++ Study Group!", "c-study-group"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
