package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/logging"
)

// ErrExportFailure is wrapped by every ExportError
var ErrExportFailure = errors.New("export failed")

// Format is an export target
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"

	// FormatChart marks a weight chart image written alongside the report.
	// It is not accepted by ParseFormats.
	FormatChart Format = "chart"
)

// DefaultFormats are written when none are requested
var DefaultFormats = []Format{FormatPDF, FormatCSV}

// ParseFormats parses a comma separated list such as "pdf,csv"
func ParseFormats(s string) ([]Format, error) {
	var formats []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(part)))
		switch f {
		case "":
			continue
		case FormatPDF, FormatCSV, FormatXLSX:
		default:
			return nil, fmt.Errorf("unknown export format %q (supported: pdf, csv, xlsx)", part)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// ExportError reports one target that could not be written
type ExportError struct {
	Target Format
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export to %s: %v", strings.ToUpper(string(e.Target)), e.Path, e.Err)
}

func (e *ExportError) Unwrap() []error {
	return []error{ErrExportFailure, e.Err}
}

// Options controls Export
type Options struct {
	// BasePath is the output path without extension
	BasePath string
	Formats  []Format
	Header   Header
}

// TargetResult is the outcome of one export target
type TargetResult struct {
	Target Format
	Path   string
	Err    error // nil or *ExportError
}

// Add records one more target written outside Export. A non-nil err is
// wrapped in an ExportError.
func (o *Outcome) Add(target Format, path string, err error) {
	if err != nil {
		err = &ExportError{Target: target, Path: path, Err: err}
	}
	logging.ExportResult(string(target), path, err)
	o.Results = append(o.Results, TargetResult{Target: target, Path: path, Err: err})
}

// Status summarizes an Outcome
type Status int

const (
	Success Status = iota
	Partial
	Failure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Partial:
		return "partial"
	default:
		return "failure"
	}
}

// Outcome lists what happened to each requested target
type Outcome struct {
	Results []TargetResult
}

// Status is Success when every target was written, Failure when none was
func (o Outcome) Status() Status {
	failed := 0
	for _, r := range o.Results {
		if r.Err != nil {
			failed++
		}
	}
	switch {
	case failed == 0:
		return Success
	case failed == len(o.Results):
		return Failure
	default:
		return Partial
	}
}

// Err joins the failures, or returns nil
func (o Outcome) Err() error {
	var errs []error
	for _, r := range o.Results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

// Written lists the paths that were written
func (o Outcome) Written() []string {
	var paths []string
	for _, r := range o.Results {
		if r.Err == nil {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// Export writes every requested format independently. A failing target
// does not stop the others.
func Export(rep aggregate.Report, opts Options) Outcome {
	formats := opts.Formats
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	base := strings.TrimSuffix(opts.BasePath, filepath.Ext(opts.BasePath))
	if base == "" {
		base = "rebar_report"
	}

	var out Outcome
	for _, f := range formats {
		path := base + "." + string(f)
		out.Add(f, path, writeTarget(f, path, rep, opts.Header))
	}
	return out
}

func writeTarget(f Format, path string, rep aggregate.Report, h Header) error {
	switch f {
	case FormatPDF:
		return WritePDF(path, rep, h)
	case FormatXLSX:
		return WriteXLSX(path, rep, h)
	case FormatCSV:
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteCSV(file, rep); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}
