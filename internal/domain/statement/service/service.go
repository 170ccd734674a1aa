// Package service orchestrates batch extraction over directories of
// pre-extracted statement text files. The engine itself is pure, so the
// service fans documents out to a bounded worker pool without locking.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/pkg/metrics"
)

const (
	defaultWorkers = 4
	// defaultMaxBytes bounds input size before the engine runs; pathological
	// blobs make cascading pattern matching expensive.
	defaultMaxBytes = 4 << 20
)

// Result is the outcome of processing one source file.
type Result struct {
	ID         uuid.UUID
	SourceFile string
	Statement  statement.ParsedStatement
	Err        error
}

// Record flattens the result for report writers, folding a read error into
// the record's error marker.
func (r Result) Record() statement.Record {
	rec := r.Statement.Record()
	rec.SourceFile = filepath.Base(r.SourceFile)
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	return rec
}

// BatchService runs the extraction engine over batches of text files.
type BatchService struct {
	engine   *statement.Engine
	logger   *slog.Logger
	workers  int
	maxBytes int64
}

// NewBatchService creates a batch service with default bounds.
func NewBatchService(engine *statement.Engine, logger *slog.Logger) *BatchService {
	return &BatchService{
		engine:   engine,
		logger:   logger,
		workers:  defaultWorkers,
		maxBytes: defaultMaxBytes,
	}
}

// WithWorkers sets the worker pool size.
func (s *BatchService) WithWorkers(n int) *BatchService {
	if n > 0 {
		s.workers = n
	}
	return s
}

// WithMaxBytes sets the per-document input size bound.
func (s *BatchService) WithMaxBytes(n int64) *BatchService {
	if n > 0 {
		s.maxBytes = n
	}
	return s
}

// ProcessDir extracts every .txt file in dir, in stable name order. A
// missing or unreadable directory is a caller contract violation and returns
// an error; per-file failures land on the individual Result.
func (s *BatchService) ProcessDir(ctx context.Context, dir string) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read statements directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		s.logger.Warn("no statement text files found", slog.String("dir", dir))
		return nil, nil
	}
	return s.ProcessFiles(ctx, paths), nil
}

// ProcessFiles extracts the given files concurrently. Results keep the input
// order regardless of which worker finished first.
func (s *BatchService) ProcessFiles(ctx context.Context, paths []string) []Result {
	batchID := uuid.New()
	start := time.Now()
	s.logger.Info("batch extraction started",
		slog.String("batch_id", batchID.String()),
		slog.Int("files", len(paths)),
		slog.Int("workers", s.workers),
	)

	results := make([]Result, len(paths))
	jobs := make(chan int)

	workers := s.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				results[i] = s.processFile(paths[i])
			}
			done <- struct{}{}
		}()
	}

	for i := range paths {
		if err := ctx.Err(); err != nil {
			// Mark the remaining files as cancelled and stop feeding.
			for j := i; j < len(paths); j++ {
				results[j] = Result{ID: uuid.New(), SourceFile: paths[j], Err: err}
			}
			break
		}
		jobs <- i
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}

	s.logResults(batchID, results, time.Since(start))
	return results
}

func (s *BatchService) processFile(path string) Result {
	res := Result{ID: uuid.New(), SourceFile: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read statement text: %w", err)
		return res
	}
	if int64(len(data)) > s.maxBytes {
		s.logger.Warn("statement text truncated to size bound",
			slog.String("file", filepath.Base(path)),
			slog.Int("size", len(data)),
			slog.Int64("max_bytes", s.maxBytes),
		)
		data = data[:s.maxBytes]
	}

	start := time.Now()
	res.Statement = s.engine.Extract(string(data))
	metrics.ObserveExtraction(res.Statement, time.Since(start))

	return res
}

func (s *BatchService) logResults(batchID uuid.UUID, results []Result, elapsed time.Duration) {
	parsed, failed := 0, 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			s.logger.Error("statement processing failed",
				slog.String("file", filepath.Base(res.SourceFile)),
				slog.Any("error", res.Err),
			)
		case !res.Statement.OK:
			failed++
			s.logger.Warn("issuer undetermined",
				slog.String("file", filepath.Base(res.SourceFile)),
			)
		default:
			parsed++
			s.logger.Debug("statement parsed",
				slog.String("file", filepath.Base(res.SourceFile)),
				slog.String("issuer", string(res.Statement.Issuer)),
			)
		}
	}

	s.logger.Info("batch extraction completed",
		slog.String("batch_id", batchID.String()),
		slog.Int("parsed", parsed),
		slog.Int("failed", failed),
		slog.Duration("elapsed", elapsed),
	)
}
