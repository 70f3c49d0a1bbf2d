package urlx

import "testing"

func TestAbsolutize(t *testing.T) {
	cases := []struct {
		name string
		path string
		base string
		want string
	}{
		{"relative path", "logo.png", "acme.zeevo.shop", "https://acme.zeevo.shop/logo.png"},
		{"leading slash", "/img/logo.png", "acme.zeevo.shop", "https://acme.zeevo.shop/img/logo.png"},
		{"base with scheme", "/logo.png", "https://acme.zeevo.shop", "https://acme.zeevo.shop/logo.png"},
		{"base with http scheme", "/logo.png", "http://acme.zeevo.shop", "https://acme.zeevo.shop/logo.png"},
		{"base trailing slash", "/logo.png", "acme.zeevo.shop/", "https://acme.zeevo.shop/logo.png"},
		{"already absolute", "https://cdn.zeevo.shop/logo.png", "acme.zeevo.shop", "https://cdn.zeevo.shop/logo.png"},
		{"empty path", "", "acme.zeevo.shop", ""},
		{"empty base", "/logo.png", "", "/logo.png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Absolutize(tc.path, tc.base); got != tc.want {
				t.Fatalf("Absolutize(%q, %q) = %q, want %q", tc.path, tc.base, got, tc.want)
			}
		})
	}
}

func TestAbsolutizeIdempotent(t *testing.T) {
	paths := []string{"logo.png", "/a/b.png", "https://x.example/a.png", ""}
	bases := []string{"acme.zeevo.shop", "https://acme.zeevo.shop/", ""}

	for _, p := range paths {
		for _, b := range bases {
			once := Absolutize(p, b)
			twice := Absolutize(once, b)
			if once != twice {
				t.Fatalf("not idempotent for (%q, %q): %q vs %q", p, b, once, twice)
			}
		}
	}
}
