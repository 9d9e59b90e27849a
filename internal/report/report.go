// Package report exports the most recent prediction session as a PDF
// document. It operates only on the in-memory session handed to it; the
// persisted history ledger is deliberately not consulted.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf"

	"vitaldeck/internal/logging"
	"vitaldeck/internal/patient"
)

// ErrNoSession is returned when export is attempted before any successful
// prediction in the current process lifetime.
var ErrNoSession = errors.New("no prediction session to export")

// FilePrefix is the fixed leading literal of every report file name.
const FilePrefix = "Health_Report_"

var whitespaceRuns = regexp.MustCompile(`\s+`)

// FileName derives the report file name from the patient name, collapsing
// every whitespace run to a single underscore.
func FileName(patientName string) string {
	return FilePrefix + whitespaceRuns.ReplaceAllString(patientName, "_") + ".pdf"
}

// Export writes the session's report into dir and returns the written path.
// A nil session produces no file and fails with ErrNoSession.
func Export(s *patient.Session, dir string) (string, error) {
	return exportAt(s, dir, time.Now())
}

// exportAt is Export with an explicit clock, for tests.
func exportAt(s *patient.Session, dir string, now time.Time) (string, error) {
	if s == nil {
		return "", ErrNoSession
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "AI Smart Healthcare Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	line := func(text string) {
		pdf.CellFormat(0, 6, tr(text), "", 1, "L", false, 0, "")
	}

	line(fmt.Sprintf("Patient: %s", s.Input.Name))
	line(fmt.Sprintf("Age: %s", formatVital(s.Input.Age)))
	line(fmt.Sprintf("Date: %s", now.Format(patient.TimestampLayout)))
	pdf.Ln(4)

	line("Disease Assessment:")
	for _, c := range patient.Conditions {
		label := "Low Risk"
		if s.Assessment.Flag(c) {
			label = "High Risk"
		}
		line(fmt.Sprintf("%s: %s", c.Title(), label))
	}
	pdf.Ln(4)

	line("AI Explanation:")
	for _, e := range s.Assessment.Explanation {
		line(fmt.Sprintf("- %s", e))
	}

	path := filepath.Join(dir, FileName(s.Input.Name))
	if err := pdf.OutputFileAndClose(path); err != nil {
		logging.ReportError("export failed for session %s: %v", s.ID, err)
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	logging.Report("exported session %s to %s", s.ID, path)
	return path, nil
}

// formatVital renders an age cell, leaving a dash for the not-a-number
// sentinel rather than printing NaN at the patient's eye level.
func formatVital(v patient.Vital) string {
	if v.NaN() {
		return "-"
	}
	return fmt.Sprintf("%g", float64(v))
}
