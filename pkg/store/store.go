// pkg/store/store.go

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sg-invoicing/pkg/invoice"
)

// ErrDuplicateKey reports an insert colliding with an existing invoice
// number. It means the allocator and the store have desynced (for
// example two processes writing to the same database) and must not be
// swallowed.
var ErrDuplicateKey = errors.New("duplicate invoice number")

// Store is the durable table of invoice records, keyed by invoice
// number.
type Store struct {
	db   *gorm.DB
	seed string
}

// Open connects to the record store and ensures the invoices table
// exists. A dsn starting with postgres:// selects PostgreSQL; anything
// else is treated as a SQLite file path, with parent directories
// created as needed. seed is the number reported by LastNumber when the
// table is empty.
func Open(dsn, seed string) (*Store, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	default:
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, ok := dialector.(*sqlite.Dialector); ok {
		if sqlDB, err := db.DB(); err == nil {
			_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
			_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
		}
	}

	if err := db.AutoMigrate(&invoice.Record{}); err != nil {
		return nil, fmt.Errorf("migrate invoices table: %w", err)
	}

	return &Store{db: db, seed: seed}, nil
}

// Append inserts one new record. A colliding invoice number yields
// ErrDuplicateKey.
func (s *Store) Append(rec invoice.Record) error {
	if err := s.db.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, rec.InvoiceNumber)
		}
		return fmt.Errorf("insert invoice %s: %w", rec.InvoiceNumber, err)
	}
	return nil
}

// LastNumber returns the numerically greatest stored invoice number, or
// the seed if the table is empty. Ordering is longest-suffix first so
// numbers that grew past 4 digits still sort above the zero-padded ones.
func (s *Store) LastNumber() (string, error) {
	var rec invoice.Record
	err := s.db.Order("length(invoice_number) DESC, invoice_number DESC").
		Limit(1).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.seed, nil
	}
	if err != nil {
		return "", fmt.Errorf("read last invoice number: %w", err)
	}
	return rec.InvoiceNumber, nil
}

// List returns every record, oldest number first.
func (s *Store) List() ([]invoice.Record, error) {
	var recs []invoice.Record
	err := s.db.Order("length(invoice_number) ASC, invoice_number ASC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return recs, nil
}

// Has reports whether a record exists for the given invoice number.
func (s *Store) Has(number string) (bool, error) {
	var n int64
	err := s.db.Model(&invoice.Record{}).
		Where("invoice_number = ?", number).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("probe invoice %s: %w", number, err)
	}
	return n > 0, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
