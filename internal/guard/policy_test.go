package guard

import "testing"

func TestIsAdmitted(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"moderator", true},
		{"user", false},
		{"", false},
		{"Admin", false},
		{"root", false},
	}
	for _, tc := range cases {
		if got := IsAdmitted(tc.role); got != tc.want {
			t.Errorf("IsAdmitted(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
