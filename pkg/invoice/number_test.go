// pkg/invoice/number_test.go

package invoice

import (
	"errors"
	"testing"
)

func TestNextNumber(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"SG7852", "SG7853"},
		{"SG0009", "SG0010"},
		{"SG0099", "SG0100"},
		{"SG9999", "SG10000"},
		{"SG10000", "SG10001"},
	}

	for _, tc := range cases {
		got, err := NextNumber(tc.last, "SG")
		if err != nil {
			t.Errorf("NextNumber(%q) error = %v, want nil", tc.last, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NextNumber(%q) = %q, want %q", tc.last, got, tc.want)
		}
	}
}

func TestNextNumber_Malformed(t *testing.T) {
	cases := []string{
		"7853",    // no prefix
		"XG7853",  // wrong prefix
		"SG",      // empty suffix
		"SGabcd",  // non-numeric suffix
		"SG78a53", // digit run interrupted
		"",
	}

	for _, last := range cases {
		_, err := NextNumber(last, "SG")
		if err == nil {
			t.Errorf("NextNumber(%q) error = nil, want ErrMalformedNumber", last)
			continue
		}
		if !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("NextNumber(%q) error = %v, want ErrMalformedNumber", last, err)
		}
	}
}
