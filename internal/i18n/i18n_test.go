package i18n

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		explicit string
		accept   string
		fallback string
		want     string
	}{
		{"explicit en", "en", "", "fr", "en"},
		{"explicit region", "fr-CA", "", "en", "fr"},
		{"explicit wins over header", "fr", "en-US,en;q=0.9", "en", "fr"},
		{"header", "", "en-GB,en;q=0.8", "fr", "en"},
		{"header weighted", "", "de;q=0.9,fr;q=0.5", "en", "fr"},
		{"unsupported explicit falls to header", "de", "en", "fr", "en"},
		{"nothing", "", "", "en", "en"},
		{"unsupported everything", "ja", "zh", "fr", "fr"},
		{"bad fallback", "", "", "xx", "fr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.explicit, tc.accept, tc.fallback); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("fr") || !IsSupported("en") || IsSupported("de") {
		t.Fatalf("unexpected support set %v", Supported())
	}
}
