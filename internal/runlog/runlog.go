// Package runlog keeps the CSV audit trail of verification outcomes.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ibcheck/ibcheck/internal/verify"
)

// Entry is one row in the verification log.
type Entry struct {
	Timestamp time.Time
	RunID     string
	CaseID    string
	Check     string
	Expected  string
	Actual    string
	Status    string // pass, fail or error
	Details   string
}

// Header is the CSV header for verify-log.csv.
const Header = "timestamp,run_id,case_id,check,expected,actual,status,details"

// FileName is the log file inside the log directory.
const FileName = "verify-log.csv"

const (
	numFields    = 8
	colTimestamp = 0
	colRunID     = 1
	colCaseID    = 2
	colCheck     = 3
	colExpected  = 4
	colActual    = 5
	colStatus    = 6
	colDetails   = 7
)

// FromOutcome converts a case outcome into a log entry.
func FromOutcome(runID string, ts time.Time, o verify.Outcome) Entry {
	e := Entry{
		Timestamp: ts,
		RunID:     runID,
		CaseID:    o.Case.ID,
		Check:     string(o.Case.Check),
		Status:    o.Status(),
	}
	if o.Case.IsFX() {
		e.Check += "/" + o.Case.Direction.String()
	}
	if o.Err != nil {
		e.Details = o.Err.Error()
		return e
	}
	e.Expected = o.Result.Expected.StringFixed(2)
	e.Actual = o.Result.Actual.StringFixed(2)
	if err := o.Result.Err(); err != nil {
		e.Details = err.Error()
	} else {
		e.Details = o.Case.Remarks
	}
	return e
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colCaseID] = e.CaseID
	row[colCheck] = e.Check
	row[colExpected] = e.Expected
	row[colActual] = e.Actual
	row[colStatus] = e.Status
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		RunID:     record[colRunID],
		CaseID:    record[colCaseID],
		Check:     record[colCheck],
		Expected:  record[colExpected],
		Actual:    record[colActual],
		Status:    record[colStatus],
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to <logDir>/verify-log.csv, creating the file and header if needed.
func Append(logDir string, entries []Entry) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(logDir, FileName)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening verify log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <logDir>/verify-log.csv.
// Returns an empty slice if the file does not exist.
func Read(logDir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(logDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening verify log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading verify log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ByRun returns the entries of one run, in log order.
func ByRun(entries []Entry, runID string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.RunID == runID {
			out = append(out, e)
		}
	}
	return out
}
