// Command parser runs the statement extraction engine over a directory of
// pre-extracted statement text files and writes JSON/CSV/XLSX reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/report"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/service"
	"github.com/FACorreiaa/statement-parser/pkg/config"
	"github.com/FACorreiaa/statement-parser/pkg/cron"
	"github.com/FACorreiaa/statement-parser/pkg/metrics"
)

func main() {
	var (
		dirFlag   = flag.String("dir", "", "statements directory (overrides STATEMENTS_DIR)")
		outFlag   = flag.String("out", "", "output directory (overrides OUTPUT_DIR)")
		watchFlag = flag.Bool("watch", false, "keep running and rescan on the WATCH_CRON schedule")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dirFlag != "" {
		cfg.Input.Dir = *dirFlag
	}
	if *outFlag != "" {
		cfg.Output.Dir = *outFlag
	}

	logger := newLogger(cfg.Observability.LogLevel)

	if cfg.Observability.MetricsEnabled {
		addr := fmt.Sprintf(":%d", cfg.Observability.MetricsPort)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			logger.Info("metrics listener started", slog.String("addr", addr))
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("metrics listener failed", slog.Any("error", err))
			}
		}()
	}

	engine := statement.NewEngine()
	svc := service.NewBatchService(engine, logger).
		WithWorkers(cfg.Runtime.Workers).
		WithMaxBytes(cfg.Input.MaxBytes)

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		results, err := svc.ProcessDir(ctx, cfg.Input.Dir)
		if err != nil {
			logger.Error("batch run failed", slog.Any("error", err))
			return
		}
		if len(results) == 0 {
			return
		}

		records := make([]statement.Record, len(results))
		for i, res := range results {
			records[i] = res.Record()
		}

		if err := writeReports(cfg, records); err != nil {
			logger.Error("failed to write reports", slog.Any("error", err))
		}
		printSummary(records)
	}

	run()

	if *watchFlag && cfg.Runtime.WatchSpec != "" {
		scheduler := cron.NewScheduler(logger)
		if err := scheduler.Start(cfg.Runtime.WatchSpec, run); err != nil {
			logger.Error("failed to start watch schedule", slog.Any("error", err))
			os.Exit(1)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		<-scheduler.Stop().Done()
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func writeReports(cfg *config.Config, records []statement.Record) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cfg.Output.WriteJSON {
		if err := report.WriteJSON(filepath.Join(cfg.Output.Dir, "parsed_statements.json"), records); err != nil {
			return err
		}
	}
	if cfg.Output.WriteCSV {
		if err := report.WriteCSV(filepath.Join(cfg.Output.Dir, "parsed_statements.csv"), records); err != nil {
			return err
		}
	}
	if cfg.Output.WriteExcel {
		if err := report.WriteExcel(filepath.Join(cfg.Output.Dir, "parsed_statements.xlsx"), records); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(records []statement.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tISSUER\tNAME\tCARD\tSTATEMENT\tDUE\tTOTAL\tMIN DUE\tERROR")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.SourceFile, rec.Issuer, rec.CardholderName, rec.CardLast4,
			rec.StatementDate, rec.PaymentDueDate,
			rec.TotalBalanceFormatted, rec.MinimumDueFormatted, rec.Error,
		)
	}
	w.Flush()
}
