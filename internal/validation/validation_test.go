package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"client@example.com", true},
		{"a@b.co", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"client@", false},
		{"client@nodot", false},
		{"client@domain.", false},
		{"two@@example.com", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+48 123 456 789", true},
		{"781628269", true},
		{"(22) 123-45-67", true},
		{"12345", false},
		{"phone", false},
		{"123+456789", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPhone(tt.phone); got != tt.want {
			t.Fatalf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestIsValidPostalCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"00-001", true},
		{"31-222", true},
		{"00001", false},
		{"0-0001", false},
		{"ab-cde", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPostalCode(tt.code); got != tt.want {
			t.Fatalf("IsValidPostalCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	for rating, want := range map[int]bool{0: false, 1: true, 5: true, 6: false, -1: false} {
		if got := IsValidRating(rating); got != want {
			t.Fatalf("IsValidRating(%d) = %v, want %v", rating, got, want)
		}
	}
}
