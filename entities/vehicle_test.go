package entities

import "testing"

func TestNormalizeVehicleNo(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normal", "MH-09-AZ-1234", "MH-09-AZ-1234"},
		{"lowercase", "mh-09-az-1234", "MH-09-AZ-1234"},
		{"mixed case with spaces", "  Mh-09-Az-1234 ", "MH-09-AZ-1234"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeVehicleNo(tc.in); got != tc.want {
				t.Errorf("NormalizeVehicleNo(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
