package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/Ansh3878/matrix-jobs/internal/aggregate"
	"github.com/Ansh3878/matrix-jobs/internal/export"
	"github.com/Ansh3878/matrix-jobs/internal/models"
	"github.com/Ansh3878/matrix-jobs/internal/network"
	"github.com/Ansh3878/matrix-jobs/internal/provider"
)

const searchTimeout = 60 * time.Second

type SearchCmd struct {
	Query  string `arg:"" optional:"" help:"Search text."`
	Source string `help:"Provider name or all." default:"all"`
	SearchOptions
}

type SourceCmd struct {
	Query string `arg:"" optional:"" help:"Search text."`
	SearchOptions
	Source string `kong:"-"`
}

type SearchOptions struct {
	Location string `help:"Location substring filter." env:"MATRIXJOBS_DEFAULT_LOCATION"`
	Remote   bool   `help:"Remote-only roles." default:"true" negatable:""`
	Page     int    `help:"Result page." default:"1"`
	PerPage  int    `help:"Results per page (max 50)."`
	Format   string `help:"Output format: csv, json, md, tsv." enum:",csv,json,md,tsv" default:""`
	Output   string `name:"output" short:"o" help:"Write output to a file."`
}

func (s *SearchCmd) Run(ctx *Context) error {
	return runSearch(ctx, s.Query, s.Source, s.SearchOptions)
}

func (s *SourceCmd) Run(ctx *Context) error {
	return runSearch(ctx, s.Query, s.Source, s.SearchOptions)
}

func runSearch(ctx *Context, text string, source string, opts SearchOptions) error {
	client, err := network.NewClient()
	if err != nil {
		return err
	}

	providers := provider.Registry(ctx.Config, client)
	aggregator := aggregate.New(providers, ctx.Logger)

	query := models.Query{
		Text:       text,
		Location:   firstNonEmpty(opts.Location, ctx.Config.DefaultLocation),
		RemoteOnly: opts.Remote,
		Source:     source,
		Page:       opts.Page,
		PerPage:    defaultInt(opts.PerPage, ctx.Config.DefaultPerPage),
	}.Normalized()

	requestCtx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	page, err := aggregator.Search(requestCtx, query)
	if err != nil {
		return err
	}

	writer := ctx.Out
	var file *os.File
	if opts.Output != "" {
		file, err = os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	format := resolveFormat(ctx, opts, writer)
	writeOpts := export.WriteOptions{
		ColorEnabled: colorEnabled(ctx, writer) && format == export.FormatTable,
	}
	if err := export.WriteJobs(writer, page.Results, format, writeOpts); err != nil {
		return err
	}

	printSearchSummary(ctx, page)
	return nil
}

func printSearchSummary(ctx *Context, page models.Page) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	fmt.Fprintf(ctx.Err, "summary: total=%d page=%d perPage=%d source=%s\n",
		page.Total, page.Page, page.PerPage, page.Source)
}

func resolveFormat(ctx *Context, opts SearchOptions, writer io.Writer) export.Format {
	if ctx.JSONOutput {
		return export.FormatJSON
	}
	if ctx.PlainText {
		return export.FormatTSV
	}
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "csv":
		return export.FormatCSV
	case "json":
		return export.FormatJSON
	case "md", "markdown":
		return export.FormatMarkdown
	case "tsv":
		return export.FormatTSV
	}
	if opts.Output != "" || !isTTY(writer) {
		return export.FormatCSV
	}
	return export.FormatTable
}

func colorEnabled(ctx *Context, writer io.Writer) bool {
	if ctx.JSONOutput || ctx.PlainText {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	switch ctx.ColorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTTY(writer)
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
