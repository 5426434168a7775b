// cmd/main.go

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/sg-invoicing/pkg/config"
	"github.com/sg-invoicing/pkg/document"
	"github.com/sg-invoicing/pkg/generator"
	"github.com/sg-invoicing/pkg/store"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "invoicegen",
		Usage: "generate sequential PDF invoices from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config.yaml",
			},
		},
		Action: runGenerate,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "interactively generate invoices (default)",
				Action: runGenerate,
			},
			{
				Name:   "list",
				Usage:  "print all stored invoice records",
				Action: runList,
			},
			{
				Name:   "reconcile",
				Usage:  "list PDF files that have no stored record",
				Action: runReconcile,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) (*generator.Generator, *store.Store, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.Database.DSN, cfg.Invoice.SeedNumber)
	if err != nil {
		return nil, nil, err
	}
	g := &generator.Generator{
		Store: st,
		Renderer: document.Renderer{
			BusinessName:   cfg.Business.Name,
			CurrencySymbol: cfg.Business.CurrencySymbol,
		},
		OutputDir:    cfg.Invoice.OutputDir,
		NumberPrefix: cfg.Invoice.NumberPrefix,
	}
	return g, st, nil
}

func runGenerate(c *cli.Context) error {
	g, st, err := setup(c)
	if err != nil {
		return err
	}
	defer st.Close()
	return g.RunSession(c.App.Reader, c.App.Writer)
}

func runList(c *cli.Context) error {
	_, st, err := setup(c)
	if err != nil {
		return err
	}
	defer st.Close()

	recs, err := st.List()
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Fprintf(c.App.Writer, "%s  %-12s  qty %s  rate %s  amount %s  %s\n",
			rec.InvoiceNumber, rec.Date, rec.Quantity, rec.Rate, rec.Amount, rec.Client)
	}
	return nil
}

func runReconcile(c *cli.Context) error {
	g, st, err := setup(c)
	if err != nil {
		return err
	}
	defer st.Close()

	orphans, err := g.Reconcile()
	if err != nil {
		return err
	}
	if len(orphans) == 0 {
		fmt.Fprintln(c.App.Writer, "No orphaned invoice files.")
		return nil
	}
	for _, path := range orphans {
		fmt.Fprintln(c.App.Writer, path)
	}
	return cli.Exit(fmt.Sprintf("%d orphaned invoice file(s) found", len(orphans)), 1)
}
