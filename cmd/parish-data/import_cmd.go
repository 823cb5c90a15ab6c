package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/parishdesk/parishdesk/modules/dataimport/importer"
	"github.com/parishdesk/parishdesk/modules/dataimport/services"
	directorypersistence "github.com/parishdesk/parishdesk/modules/directory/infrastructure/persistence"
	givingpersistence "github.com/parishdesk/parishdesk/modules/giving/infrastructure/persistence"
	"github.com/parishdesk/parishdesk/pkg/composables"
	"github.com/parishdesk/parishdesk/pkg/configuration"
)

type importOptions struct {
	entity string
	file   string
	apply  bool
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import members, households, or donations from a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.entity, "entity", "", "Entity to import: members, households, or donations (required)")
	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the .xlsx or .xls file (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Apply changes to DB (default is dry-run inside a rolled-back transaction)")

	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(ctx context.Context, opts importOptions) error {
	switch opts.entity {
	case "members", "households", "donations":
	default:
		return withCode(exitUsage, fmt.Errorf("unsupported --entity: %s", opts.entity))
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("open %s: %w", opts.file, err))
	}
	defer func() { _ = f.Close() }()

	conf := configuration.Use()

	connectCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(connectCtx, conf.Database.Opts)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("connect: %w", err))
	}
	defer pool.Close()

	svc := services.NewImportService(
		directorypersistence.NewHouseholdRepository(),
		directorypersistence.NewMemberRepository(),
		givingpersistence.NewDonationRepository(),
		nil,
		nil,
		conf.Import.MaxRows,
	)

	runCtx := composables.WithPool(ctx, pool)

	var report importer.Report
	run := func(ctx context.Context) error {
		var err error
		switch opts.entity {
		case "members":
			report, err = svc.ImportMembers(ctx, f)
		case "households":
			report, err = svc.ImportHouseholds(ctx, f)
		case "donations":
			report, err = svc.ImportDonations(ctx, f)
		}
		return err
	}

	if opts.apply {
		err = run(runCtx)
	} else {
		err = dryRun(runCtx, pool, run)
	}
	if err != nil {
		var batchErr *importer.BatchError
		if errors.As(err, &batchErr) {
			return withCode(exitValidation, err)
		}
		return withCode(exitDB, err)
	}

	return printReport(opts, report)
}

// dryRun executes fn inside a transaction that is always rolled back, so
// the inserted/updated split reflects what an apply run would do.
func dryRun(ctx context.Context, pool *pgxpool.Pool, fn func(context.Context) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return fn(composables.WithTx(ctx, tx))
}

func printReport(opts importOptions, report importer.Report) error {
	mode := "dry_run"
	if opts.apply {
		mode = "applied"
	}
	fmt.Printf("mode=%s entity=%s format=%s total=%d inserted=%d updated=%d skipped=%d errors=%d\n",
		mode, opts.entity, report.Format,
		report.Total, report.Inserted, report.Updated, report.Skipped, report.Errors,
	)
	return nil
}
