package quiz

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "lowercases", in: "PaRiS", want: "paris"},
		{name: "strips spaces and punctuation", in: "A, b-c", want: "abc"},
		{name: "same token as compact form", in: "Abc", want: "abc"},
		{name: "html entities decoded", in: "fish &amp; chips", want: "fishchips"},
		{name: "numeric entity", in: "caf&#233;", want: "caf"}, // é is outside both scripts
		{name: "digits kept", in: "Route 66!", want: "route66"},
		{name: "hebrew kept", in: "שלום, עולם!", want: "שלוםעולם"},
		{name: "mixed scripts", in: "פרק 1 - Intro", want: "פרק1intro"},
		{name: "only punctuation", in: "?!...", want: ""},
		{name: "other scripts dropped", in: "Привет", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "A, b-c", "fish &amp; chips", "שלום עולם", "Route 66", "?!"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
