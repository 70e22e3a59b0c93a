package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/muesli/termenv"

	"github.com/Ansh3878/matrix-jobs/internal/models"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

const linkColor = "#87CEEB"

type WriteOptions struct {
	ColorEnabled bool
}

// WriteJobs renders listings in the requested format. The table format is
// for interactive terminals; CSV/TSV/JSON are for piping into other tools.
func WriteJobs(w io.Writer, jobs []models.Job, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, jobs)
	case FormatCSV:
		return writeCSV(w, jobs, ',')
	case FormatTSV:
		return writeCSV(w, jobs, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, jobs)
	default:
		return writeTable(w, jobs, opts)
	}
}

func writeJSON(w io.Writer, jobs []models.Job) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jobs)
}

func writeCSV(w io.Writer, jobs []models.Job, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writer.Write(csvRow(job)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	for _, job := range jobs {
		fmt.Fprintln(tw, strings.Join(tableRow(job, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, jobs []models.Job) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	for _, job := range jobs {
		urlLine := "  URL: -"
		if url := safe(job.URL); url != "" {
			urlLine = fmt.Sprintf("  URL: [Apply](<%s>)", url)
		}
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(job.Title), safe(job.Company)),
			fmt.Sprintf("  Location: %s", safe(job.Location)),
			fmt.Sprintf("  Source: %s", safe(job.Source)),
			urlLine,
		}
		if job.IsRemote {
			lines = append(lines, "  Remote: yes")
		}
		if job.Type != "" {
			lines = append(lines, fmt.Sprintf("  Type: %s", safe(job.Type)))
		}
		if job.Salary != "" {
			lines = append(lines, fmt.Sprintf("  Salary: %s", safe(job.Salary)))
		}
		if job.PostedAt != nil {
			lines = append(lines, fmt.Sprintf("  Posted: %s", job.PostedAt.Format(time.RFC3339)))
		}
		if len(job.Tags) > 0 {
			lines = append(lines, fmt.Sprintf("  Tags: %s", strings.Join(job.Tags, ", ")))
		}
		if job.Snippet != "" {
			lines = append(lines, fmt.Sprintf("  Summary: %s", safe(job.Snippet)))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{"id", "source", "title", "company", "location", "remote", "type", "salary", "posted_at", "url", "tags"}
}

func csvRow(job models.Job) []string {
	return []string{
		job.ID,
		job.Source,
		job.Title,
		job.Company,
		job.Location,
		fmt.Sprintf("%t", job.IsRemote),
		job.Type,
		job.Salary,
		formatPostedAt(job.PostedAt),
		job.URL,
		strings.Join(job.Tags, ";"),
	}
}

func tableHeader() []string {
	return []string{"SOURCE", "TITLE", "COMPANY", "LOCATION", "POSTED", "LINK"}
}

func tableRow(job models.Job, output *termenv.Output, opts WriteOptions) []string {
	link := safe(job.URL)
	if link == "" {
		link = "-"
	} else if opts.ColorEnabled {
		link = output.String(link).Foreground(output.Color(linkColor)).String()
	}

	posted := formatPostedAt(job.PostedAt)
	if posted == "" {
		posted = "-"
	}

	return []string{
		safeCell(job.Source),
		safeCell(job.Title),
		safeCell(job.Company),
		safeCell(job.Location),
		posted,
		link,
	}
}

func formatPostedAt(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format("2006-01-02")
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func safeCell(value string) string {
	value = safe(value)
	if value == "" {
		return "-"
	}
	return strings.ReplaceAll(value, "\t", " ")
}
