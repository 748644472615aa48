package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format is an output format for the report
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "csv", "":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: csv, json, markdown)", s)
	}
}

// Render writes rows to w in the given format
func Render(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatCSV:
		return RenderCSV(w, rows)
	case FormatJSON:
		return RenderJSON(w, rows)
	case FormatMarkdown:
		return RenderMarkdown(w, rows)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// RenderCSV writes the header and one record per row
func RenderCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.Date, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// RenderJSON writes the rows as an indented JSON array
func RenderJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// RenderMarkdown writes the rows as a markdown table
func RenderMarkdown(w io.Writer, rows []Row) error {
	var sb strings.Builder

	sb.WriteString("| " + strings.Join(Header, " | ") + " |\n")
	sb.WriteString(strings.Repeat("|---", len(Header)) + "|\n")

	for _, r := range rows {
		fields := r.Fields()
		for i, f := range fields {
			fields[i] = escapeMarkdownCell(f)
		}
		sb.WriteString("| " + strings.Join(fields, " | ") + " |\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

var markdownCellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
)

func escapeMarkdownCell(s string) string {
	return markdownCellReplacer.Replace(s)
}
