package storage

import (
	"net/url"
	"testing"
)

func TestKeyFromURLRoundTrip(t *testing.T) {
	endpoint, _ := url.Parse("http://localhost:9000")

	tests := []struct {
		name  string
		store *AvatarStore
		key   string
	}{
		{"aws virtual host", &AvatarStore{bucket: "horus-avatars"}, "avatars/military/abc.webp"},
		{"endpoint path style", &AvatarStore{bucket: "horus-avatars", baseURL: endpoint}, "avatars/military/abc.jpg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.store.PublicURL(tc.key)
			if got := tc.store.KeyFromURL(u); got != tc.key {
				t.Errorf("KeyFromURL(%q) = %q, want %q", u, got, tc.key)
			}
		})
	}
}

func TestKeyFromURLRejectsForeignURL(t *testing.T) {
	store := &AvatarStore{bucket: "horus-avatars"}
	for _, raw := range []string{
		"https://outro-bucket.s3.amazonaws.com/avatars/x.webp",
		"https://exemplo.com/foto.png",
		store.PublicURL(""),
		"",
	} {
		if got := store.KeyFromURL(raw); got != "" {
			t.Errorf("KeyFromURL(%q) = %q, want empty", raw, got)
		}
	}
}
