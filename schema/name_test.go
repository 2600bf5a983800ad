package schema

import (
	"testing"
	"testing/quick"
)

func TestIsValidFieldName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"title", true},
		{"num_stars", true},
		{"_", true},
		{"9lives", true},
		{"CamelCase2", true},
		{"", false},
		{"with space", false},
		{"dash-ed", false},
		{"dot.ted", false},
		{"héllo", false},
		{"tab\t", false},
		{"title!", false},
	}
	for _, tc := range cases {
		if got := IsValidFieldName(tc.name); got != tc.want {
			t.Errorf("IsValidFieldName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsValidFieldNameProperty(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	valid := func(picks []uint8) bool {
		if len(picks) == 0 {
			return true
		}
		b := make([]byte, len(picks))
		for i, p := range picks {
			b[i] = alphabet[int(p)%len(alphabet)]
		}
		return IsValidFieldName(string(b))
	}
	if err := quick.Check(valid, nil); err != nil {
		t.Error(err)
	}

	polluted := func(prefix []uint8, bad rune) bool {
		isAllowed := bad == '_' ||
			(bad >= 'a' && bad <= 'z') ||
			(bad >= 'A' && bad <= 'Z') ||
			(bad >= '0' && bad <= '9')
		if isAllowed {
			return true
		}
		b := make([]byte, len(prefix))
		for i, p := range prefix {
			b[i] = alphabet[int(p)%len(alphabet)]
		}
		return !IsValidFieldName(string(b) + string(bad))
	}
	if err := quick.Check(polluted, nil); err != nil {
		t.Error(err)
	}
}
