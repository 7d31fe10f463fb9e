// Package export writes the task collection in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/task"
)

// Format is an export output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat parses a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Write renders tasks to w in the given format.
func Write(w io.Writer, format Format, tasks []task.Task) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, tasks)
	case FormatCSV:
		return writeCSV(w, tasks)
	case FormatPDF:
		return writePDF(w, tasks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, tasks []task.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeCSV(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "completed", "priority", "created_at", "completed_at", "due_date", "categories"}); err != nil {
		return err
	}
	for _, t := range tasks {
		completedAt := ""
		if t.CompletedAt != nil {
			completedAt = t.CompletedAt.Format("2006-01-02 15:04:05")
		}
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		rec := []string{
			strconv.Itoa(t.ID),
			t.Title,
			strconv.FormatBool(t.Completed),
			string(t.Priority),
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			completedAt,
			due,
			strings.Join(t.Categories, ";"),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, tasks []task.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todo List")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	for _, t := range tasks {
		status := "open"
		if t.Completed {
			status = "done"
		}
		line := fmt.Sprintf("[%d] %s (%s, %s)", t.ID, t.Title, status, t.Priority)
		if t.DueDate != nil {
			line += " due " + t.DueDate.Format("2006-01-02")
		}
		if len(t.Categories) > 0 {
			line += " #" + strings.Join(t.Categories, " #")
		}
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}
	return pdf.Output(w)
}
