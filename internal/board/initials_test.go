package board

import "testing"

func TestInitials(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "jane.doe@example.com", want: "JD"},
		{email: "bob@example.com", want: "B"},
		{email: "_@example.com", want: "_"},
		{email: "mary-ann_smith.jones@example.com", want: "MA"},
		{email: "jane..doe@example.com", want: "J"},
		{email: ".doe@example.com", want: "D"},
		{email: "@example.com", want: "@"},
		{email: "no-at-sign", want: "NA"},
		{email: "élodie.ñu@example.com", want: "ÉÑ"},
		{email: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			if got := Initials(tc.email); got != tc.want {
				t.Fatalf("Initials(%q) = %q, want %q", tc.email, got, tc.want)
			}
		})
	}
}
