package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// ErrReportNotFound is returned when no run report has been saved yet.
var ErrReportNotFound = errors.New("no run report found")

const reportFileName = "last-run.msgpack"

// ReportStore persists the journal of the most recent run.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error)
}

// LocalReportStore keeps reports as msgpack files on disk.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report atomically into dir.
func (s *LocalReportStore) SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	tmp, err := os.CreateTemp(string(dir), "run-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}

	tmpName := tmp.Name()

	if err := msgpack.NewEncoder(tmp).Encode(&report); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("encode report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp report: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(string(dir), reportFileName)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store report: %w", err)
	}

	return nil
}

// LoadReport reads the last report saved into dir.
func (s *LocalReportStore) LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	// #nosec G304 - the reports dir is operator configuration
	f, err := os.Open(filepath.Join(string(dir), reportFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.RunReport{}, fmt.Errorf("%w in %s", ErrReportNotFound, dir)
		}

		return m.RunReport{}, fmt.Errorf("open report: %w", err)
	}

	defer func() { _ = f.Close() }()

	var report m.RunReport
	if err := msgpack.NewDecoder(f).Decode(&report); err != nil {
		return m.RunReport{}, fmt.Errorf("decode report: %w", err)
	}

	return report, nil
}
