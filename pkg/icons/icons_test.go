package icons

import "testing"

func TestForType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cherry Tomato", "🍅"},
		{"tomato", "🍅"},
		{"PEPPER", "🌶️"},
		{"Sweet Basil", "🌿"},
		{"Xyz", "🌱"},
		{"", "🌱"},
	}
	for _, c := range cases {
		if got := ForType(c.in); got != c.want {
			t.Fatalf("ForType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestForTypeFirstMatchWins(t *testing.T) {
	// "tomato" precedes "pepper" in the table, so a type containing both
	// resolves to the tomato emoji.
	if got := ForType("pepper and tomato mix"); got != "🍅" {
		t.Fatalf("expected first table entry to win, got %q", got)
	}
}
