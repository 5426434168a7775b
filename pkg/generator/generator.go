// pkg/generator/generator.go

// Package generator ties invoice number allocation, PDF assembly, file
// output and record persistence into one operation per invoice.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sg-invoicing/pkg/invoice"
)

// DateLayout is the human-readable date stamped on invoices, e.g.
// "Aug 30, 2026".
const DateLayout = "Jan 02, 2006"

// RecordStore is the persistence boundary the generator writes through.
// *store.Store satisfies it; tests may substitute anything.
type RecordStore interface {
	LastNumber() (string, error)
	Append(invoice.Record) error
	Has(number string) (bool, error)
}

// Renderer writes the printable document for a record to a path.
type Renderer interface {
	Render(rec invoice.Record, path string) error
}

// Generator creates invoices. All collaborators are injected; there is
// no ambient state.
type Generator struct {
	Store        RecordStore
	Renderer     Renderer
	OutputDir    string
	NumberPrefix string

	// Now stamps the invoice date; defaults to time.Now.
	Now func() time.Time
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// Generate allocates the next invoice number, renders the PDF into the
// output directory and appends the record to the store. It returns the
// written file's path.
//
// There is no rollback: if the PDF is written but the record insert
// fails, the file stays on disk with no matching record. Reconcile
// finds such orphans.
func (g *Generator) Generate(quantity, rate decimal.Decimal, client string) (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	last, err := g.Store.LastNumber()
	if err != nil {
		return "", err
	}
	number, err := invoice.NextNumber(last, g.NumberPrefix)
	if err != nil {
		return "", err
	}

	rec := invoice.New(number, g.now().Format(DateLayout), quantity, rate, client)

	path := filepath.Join(g.OutputDir, number+".pdf")
	if err := g.Renderer.Render(rec, path); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", number, err)
	}

	if err := g.Store.Append(rec); err != nil {
		return "", err
	}
	return path, nil
}

// Reconcile lists orphaned documents: PDFs in the output directory
// whose invoice number has no stored record. A missing output directory
// means nothing was ever generated and yields no orphans.
func (g *Generator) Reconcile() ([]string, error) {
	entries, err := os.ReadDir(g.OutputDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}

	var orphans []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".pdf") {
			continue
		}
		number := strings.TrimSuffix(name, ".pdf")
		if !strings.HasPrefix(number, g.NumberPrefix) {
			continue
		}
		ok, err := g.Store.Has(number)
		if err != nil {
			return nil, err
		}
		if !ok {
			orphans = append(orphans, filepath.Join(g.OutputDir, name))
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}
