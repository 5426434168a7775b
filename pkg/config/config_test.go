// pkg/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Invoice.NumberPrefix != "SG" {
		t.Errorf("number prefix = %q, want SG", cfg.Invoice.NumberPrefix)
	}
	if cfg.Invoice.SeedNumber != "SG7852" {
		t.Errorf("seed number = %q, want SG7852", cfg.Invoice.SeedNumber)
	}
	if cfg.Invoice.OutputDir != "invoices" {
		t.Errorf("output dir = %q, want invoices", cfg.Invoice.OutputDir)
	}
	if cfg.Database.DSN != "invoices.db" {
		t.Errorf("dsn = %q, want invoices.db", cfg.Database.DSN)
	}
	if cfg.Business.CurrencySymbol != "£" {
		t.Errorf("currency symbol = %q, want £", cfg.Business.CurrencySymbol)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `business:
  name: "Acme Consulting"
  currency_symbol: "$"
invoice:
  number_prefix: "AC"
  seed_number: "AC0100"
  output_dir: "out"
database:
  dsn: "data/acme.db"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Business.Name != "Acme Consulting" {
		t.Errorf("business name = %q", cfg.Business.Name)
	}
	if cfg.Invoice.NumberPrefix != "AC" || cfg.Invoice.SeedNumber != "AC0100" {
		t.Errorf("invoice config = %+v", cfg.Invoice)
	}
	if cfg.Database.DSN != "data/acme.db" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("INVGEN_DATABASE_DSN", "/tmp/other.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.DSN != "/tmp/other.db" {
		t.Errorf("dsn = %q, want env override /tmp/other.db", cfg.Database.DSN)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing explicit file: error = nil, want error")
	}
}
