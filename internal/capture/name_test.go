package capture

import "testing"

func TestNameParent(t *testing.T) {
	tests := []struct {
		name Name
		want Name
	}{
		{"keyword.operator", "keyword"},
		{"string.escape.unicode", "string.escape"},
		{"comment", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := tt.name.Parent(); got != tt.want {
			t.Errorf("Parent(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNameMatches(t *testing.T) {
	tests := []struct {
		name   Name
		prefix Name
		want   bool
	}{
		{"keyword.operator", "keyword", true},
		{"keyword", "keyword", true},
		{"keywords", "keyword", false},
		{"keyword", "keyword.operator", false},
		{"punctuation.bracket", "punctuation", true},
	}

	for _, tt := range tests {
		if got := tt.name.Matches(tt.prefix); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.name, tt.prefix, got, tt.want)
		}
	}
}
