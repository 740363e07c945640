package audit

import (
	"fmt"
	"time"

	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/internal/utils"
)

// Stage names, surfaced verbatim in the admin error notice.
const (
	StageColumnPull = "Sheet Date Column Pull"
	StageExceptions = "Prepare Exceptions List"
	StageDateRange  = "Date Range for Checking"
	StageMissing    = "Define Missing Dates"
	StageDuplicates = "Define Duplicate Dates"
)

// ColumnFetcher pulls one column of raw cell strings from the external
// tabular source. Implemented by gsheet.Client.
type ColumnFetcher interface {
	FetchColumn(spreadsheetID, cellRange string) ([]string, error)
}

// StageError records a single pipeline stage failure. Stages after a
// failed one still run on whatever partial data exists.
type StageError struct {
	Stage  string
	Detail string
}

// Config holds the detection inputs for one run. Dates arrive as
// strings so that parse failures surface as stage errors rather than
// construction errors.
type Config struct {
	SpreadsheetID  string
	CellRange      string
	StartDate      string   // YYYY-MM-DD
	DateExceptions []string // YYYY-MM-DD each
	DupeThreshold  int
}

// Result aggregates everything one run computed.
type Result struct {
	Observed   []time.Time
	Expected   []time.Time
	Missing    []time.Time
	Duplicates []Duplicate
	Errors     []StageError
}

func (r *Result) MissingDetected() bool { return len(r.Missing) > 0 }
func (r *Result) DupeDetected() bool    { return len(r.Duplicates) > 0 }
func (r *Result) ErrorDetected() bool   { return len(r.Errors) > 0 }

// MessageExists reports whether any detection fired, meaning a
// user-facing notification should be composed.
func (r *Result) MessageExists() bool {
	return r.MissingDetected() || r.DupeDetected()
}

func (r *Result) fail(stage string, err error) {
	utils.Log.Warnf("stage %q failed: %v", stage, err)
	r.Errors = append(r.Errors, StageError{Stage: stage, Detail: err.Error()})
}

// ParseCells converts raw cell strings to calendar dates. Cells are
// MM/DD/YYYY; the caller has already dropped blanks. Any time-of-day
// component is discarded.
func ParseCells(cells []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(cells))
	for _, cell := range cells {
		t, err := time.Parse("01/02/2006", cell)
		if err != nil {
			return nil, fmt.Errorf("cell %q: not a MM/DD/YYYY date", cell)
		}
		dates = append(dates, Day(t))
	}
	return dates, nil
}

// Run executes the detection pipeline: fetch the observed date column,
// prepare the exception set, generate the expected range, then compute
// missing and duplicate dates. Each stage runs inside its own failure
// boundary; a failed stage is recorded and later stages continue on
// partial or empty data. Dispatch decides what the recorded errors mean
// for delivery.
func Run(fetcher ColumnFetcher, cfg Config, now time.Time) *Result {
	res := &Result{}

	cells, err := fetcher.FetchColumn(cfg.SpreadsheetID, cfg.CellRange)
	if err != nil {
		res.fail(StageColumnPull, err)
	} else if res.Observed, err = ParseCells(cells); err != nil {
		res.fail(StageColumnPull, err)
	}
	utils.Log.Debugf("observed %d dated entries", len(res.Observed))

	var exceptions []time.Time
	for _, s := range cfg.DateExceptions {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			res.fail(StageExceptions, fmt.Errorf("exception %q: not a YYYY-MM-DD date", s))
			exceptions = nil
			break
		}
		exceptions = append(exceptions, Day(t))
	}

	start, err := time.Parse("2006-01-02", cfg.StartDate)
	if err != nil {
		res.fail(StageDateRange, fmt.Errorf("start date %q: not a YYYY-MM-DD date", cfg.StartDate))
	} else {
		res.Expected = DateRange(start, now)
	}
	utils.Log.Debugf("expecting entries for %d dates", len(res.Expected))

	res.Missing = MissingDates(res.Expected, exceptions, res.Observed)
	res.Duplicates = DuplicateDates(res.Observed, cfg.DupeThreshold)

	utils.Log.Infof("audit complete: %d missing, %d duplicated, %d stage errors",
		len(res.Missing), len(res.Duplicates), len(res.Errors))
	return res
}
