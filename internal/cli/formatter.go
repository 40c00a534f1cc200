package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/iobench/internal/iobench"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// jsonReport extends iobench.Report with the derived rates. Rates are
// pointers so a phase below timer resolution encodes as null.
type jsonReport struct {
	*iobench.Report

	ListFilesPerSec *float64 `json:"list_files_per_sec"`
	ReadBytesPerSec *float64 `json:"read_bytes_per_sec"`
	ReadFilesPerSec *float64 `json:"read_files_per_sec"`
}

func optional(value float64, ok bool) *float64 {
	if !ok {
		return nil
	}

	return &value
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *iobench.Report, writer io.Writer) error {
	out := jsonReport{
		Report:          report,
		ListFilesPerSec: optional(report.ListRate()),
		ReadBytesPerSec: optional(report.ReadByteRate()),
		ReadFilesPerSec: optional(report.ReadFileRate()),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(report *iobench.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nListing:\t\t")
	fmt.Fprintf(w, "  Files:\t%d\n", report.ListedFiles)
	fmt.Fprintf(w, "  Elapsed:\t%v\n", report.ListDuration.Round(time.Microsecond))

	if rate, ok := report.ListRate(); ok {
		fmt.Fprintf(w, "  Rate:\t%s files/s\n", humanize.CommafWithDigits(rate, 0))
	} else {
		fmt.Fprintln(w, "  Rate:\tn/a")
	}

	fmt.Fprintln(w, "\nReading:\t\t")
	fmt.Fprintf(w, "  Files:\t%d\n", report.FilesRead)
	fmt.Fprintf(w, "  Bytes:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(report.BytesRead)), report.BytesRead) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(w, "  Elapsed:\t%v\n", report.ReadDuration.Round(time.Microsecond))

	if rate, ok := report.ReadByteRate(); ok {
		fmt.Fprintf(w, "  Throughput:\t%s/s\n", humanize.IBytes(uint64(rate))) //nolint:gosec // Rate is always positive
	} else {
		fmt.Fprintln(w, "  Throughput:\tn/a")
	}

	if rate, ok := report.ReadFileRate(); ok {
		fmt.Fprintf(w, "  Rate:\t%s files/s\n", humanize.CommafWithDigits(rate, 0))
	} else {
		fmt.Fprintln(w, "  Rate:\tn/a")
	}

	fmt.Fprintln(w, "\nConfig:\t\t")
	fmt.Fprintf(w, "  Threads:\t%d\n", report.Threads)
	fmt.Fprintf(w, "  Workers:\t%d\n", report.Workers)
	fmt.Fprintf(w, "  Buffer:\t%s\n", humanize.IBytes(uint64(report.BufferSize))) //nolint:gosec // Size is always positive

	return w.Flush()
}
