// pkg/invoice/number.go

package invoice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedNumber reports a stored invoice number that does not match
// the expected <prefix><digits> format. It is surfaced rather than
// guessed around: a malformed last number means the store and the
// allocator have diverged.
var ErrMalformedNumber = errors.New("malformed invoice number")

// NextNumber derives the next invoice number from the last allocated
// one: the integer suffix after the prefix is incremented and
// reformatted zero-padded to 4 digits. Suffixes that have already grown
// past 4 digits keep growing, there is no overflow ceiling.
func NextNumber(last, prefix string) (string, error) {
	if !strings.HasPrefix(last, prefix) {
		return "", fmt.Errorf("%w: %q lacks prefix %q", ErrMalformedNumber, last, prefix)
	}
	suffix := last[len(prefix):]
	if suffix == "" || !digitsOnly(suffix) {
		return "", fmt.Errorf("%w: %q has non-numeric suffix", ErrMalformedNumber, last)
	}
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedNumber, last, err)
	}
	return fmt.Sprintf("%s%04d", prefix, n+1), nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
