package internal

import "testing"

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"abc123", true},
		{"ABCdef12", true},
		{"1234567", true},
		{"zzzzzz", true},
		{"", false},
		{"abc12", false},      // too short
		{"abc123456", false},  // too long
		{"abc-12", false},     // non-alphanumeric
		{"abc 12", false},     // space
		{"abc12é", false},     // non-ASCII
		{"______", false},
	}
	for _, tt := range tests {
		if got := ValidCode(tt.code); got != tt.want {
			t.Errorf("ValidCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestValidURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"https://example.com:8443/a/b", true},
		{"ftp://example.com", false},
		{"not a url", false},
		{"", false},
		{"example.com", false},      // no scheme
		{"//example.com", false},    // scheme-relative
		{"https://", false},         // no host
		{"javascript:alert(1)", false},
	}
	for _, tt := range tests {
		if got := ValidURL(tt.raw); got != tt.want {
			t.Errorf("ValidURL(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
