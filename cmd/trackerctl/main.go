// trackerctl runs maintenance jobs against the tracker database: exporting
// transactions, printing payment summaries and rebuilding payment clusters.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/config"
	"github.com/linskybing/grant-tracker/internal/config/db"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"github.com/linskybing/grant-tracker/pkg/storage"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printHelp()
		return errUsage
	}

	var (
		output    string
		currency  string
		grantID   uint
		topicID   uint
		retention int
	)
	flagSet := pflag.NewFlagSet("trackerctl "+args[0], pflag.ContinueOnError)
	switch args[0] {
	case "export-transactions":
		flagSet.StringVarP(&output, "output", "o", "", "write the CSV here instead of stdout")
		flagSet.StringVar(&currency, "currency", "", "currency shown in the amount header (default TRACKER_CURRENCY)")
	case "finance":
		flagSet.UintVar(&grantID, "grant", 0, "summary of one grant")
		flagSet.UintVar(&topicID, "topic", 0, "summary of one topic")
	case "reconcile":
	case "audit-cleanup":
		flagSet.IntVar(&retention, "days", 0, "keep this many days of audit log (default AUDIT_RETENTION_DAYS)")
	case "help", "-h", "--help":
		printHelp()
		return nil
	default:
		printHelp()
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	config.LoadConfig()
	log, err := logger.Init(config.Env, config.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db.Init(log)
	repos := repository.NewRepositories(db.DB)

	lifecycle := ticket.DefaultLifecycle()
	if config.LifecycleFile != "" {
		if lifecycle, err = ticket.LoadLifecycle(config.LifecycleFile); err != nil {
			return err
		}
	}
	// Maintenance commands never touch document payloads.
	svc := application.New(repos, lifecycle, storage.NewMemoryStore(), nil)

	switch args[0] {
	case "export-transactions":
		if currency == "" {
			currency = config.Currency
		}
		w := out
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return svc.Transaction.ExportCSV(w, currency)

	case "finance":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		switch {
		case grantID != 0:
			sum, err := svc.Finance.GrantPaymentSummary(grantID)
			if err != nil {
				return err
			}
			return enc.Encode(sum)
		case topicID != 0:
			sum, err := svc.Finance.TopicPaymentSummary(topicID)
			if err != nil {
				return err
			}
			return enc.Encode(sum)
		}
		overview, err := svc.Finance.FinanceOverview()
		if err != nil {
			return err
		}
		return enc.Encode(overview)

	case "reconcile":
		n, err := svc.Cluster.RebuildClusters(nil)
		if err != nil {
			return err
		}
		log.Info("Clusters rebuilt", zap.Int("clusters", n))
		fmt.Fprintf(out, "%d clusters\n", n)
		return nil

	case "audit-cleanup":
		if retention <= 0 {
			retention = config.AuditRetentionDays
		}
		n, err := svc.Audit.CleanupOldLogs(retention)
		if err != nil {
			return err
		}
		log.Info("Audit log trimmed", zap.Int("retention_days", retention), zap.Int64("deleted", n))
		fmt.Fprintf(out, "%d audit rows deleted\n", n)
		return nil
	}
	return nil
}

func printHelp() {
	fmt.Fprint(os.Stderr, `trackerctl: maintenance for the grant tracker.

Usage:
  trackerctl export-transactions [--output FILE] [--currency CODE]
  trackerctl finance [--grant ID | --topic ID]
  trackerctl reconcile
  trackerctl audit-cleanup [--days N]

Database and lifecycle settings come from the same environment
variables (or .env file) as the API server.
`)
}
