// pkg/generator/session.go

package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sg-invoicing/pkg/invoice"
)

// ErrInvalidInput reports a non-numeric quantity or rate. The session
// reports it once and ends; individual prompts are not retried.
var ErrInvalidInput = errors.New("invalid input")

// parseAmount turns a prompt answer into a decimal, mapping anything
// non-numeric to ErrInvalidInput.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, strings.TrimSpace(s))
	}
	return d, nil
}

// RunSession drives the interactive prompt loop: quantity (0 exits),
// rate, client name (blank defaults), generate, then ask whether to go
// again. Invalid numeric input prints a message and ends the whole
// session.
func (g *Generator) RunSession(in io.Reader, out io.Writer) error {
	lines := bufio.NewScanner(in)
	read := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", io.EOF
		}
		return lines.Text(), nil
	}

	for {
		ans, err := read("Enter quantity (or 0 to exit): ")
		if err != nil {
			return sessionEnd(err)
		}
		quantity, err := parseAmount(ans)
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter numeric values for quantity and rate.")
			return err
		}
		if quantity.IsZero() {
			return nil
		}

		ans, err = read("Enter rate: ")
		if err != nil {
			return sessionEnd(err)
		}
		rate, err := parseAmount(ans)
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter numeric values for quantity and rate.")
			return err
		}

		client, err := read(fmt.Sprintf("Enter client name (press Enter for %q): ", invoice.DefaultClient))
		if err != nil {
			return sessionEnd(err)
		}

		path, err := g.Generate(quantity, rate, strings.TrimSpace(client))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Invoice generated successfully: %s\n", path)

		again, err := read("Generate another invoice? (y/n): ")
		if err != nil {
			return sessionEnd(err)
		}
		if !strings.EqualFold(strings.TrimSpace(again), "y") {
			return nil
		}
	}
}

// sessionEnd treats EOF on stdin as a normal way to leave the loop.
func sessionEnd(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
