package share_test

import (
	"testing"

	"github.com/vovakirdan/zip-arcade/internal/games/zip/share"
)

func TestShareURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://zip.example/play", "https://zip.example/play?level=abc_-"},
		{"https://zip.example/play?theme=dark", "https://zip.example/play?level=abc_-&theme=dark"},
		{"https://zip.example/play?level=old", "https://zip.example/play?level=abc_-"},
	}
	for _, tt := range tests {
		got, err := share.ShareURL(tt.base, "abc_-")
		if err != nil {
			t.Fatalf("ShareURL(%q): %v", tt.base, err)
		}
		if got != tt.want {
			t.Errorf("ShareURL(%q) = %q, expected %q", tt.base, got, tt.want)
		}
	}

	if _, err := share.ShareURL("://bad", "x"); err == nil {
		t.Error("expected error for malformed base url")
	}
}

func TestTokenFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc_-", "abc_-"},
		{"  abc_-\n", "abc_-"},
		{"https://zip.example/play?level=abc_-", "abc_-"},
		{"https://zip.example/play?theme=dark&level=xyz", "xyz"},
		{"https://zip.example/play?theme=dark", "https://zip.example/play?theme=dark"},
	}
	for _, tt := range tests {
		if got := share.TokenFromURL(tt.in); got != tt.want {
			t.Errorf("TokenFromURL(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
