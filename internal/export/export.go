// Package export renders a built report to a document format.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerview/internal/report"
)

// Format names a document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for formats this build cannot render.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat maps a format name onto a Format. An empty name is json.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatHTML, FormatPDF, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Renders reports whether Write can produce documents in format f.
func Renders(f Format) bool {
	return f == FormatJSON || f == FormatCSV
}

// ContentType returns the MIME type of documents in format f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}

// Write renders v in format f. v is the report model, optionally wrapped in
// an Envelope.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatCSV:
		res, ok := resultOf(v)
		if !ok {
			return fmt.Errorf("csv export needs a report result, got %T", v)
		}
		return WriteTrialBalanceCSV(w, res)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

func resultOf(v any) (report.Result, bool) {
	switch t := v.(type) {
	case report.Result:
		return t, true
	case *report.Result:
		return *t, t != nil
	case Envelope:
		return t.Report, true
	case *Envelope:
		if t == nil {
			return report.Result{}, false
		}
		return t.Report, true
	default:
		return report.Result{}, false
	}
}
