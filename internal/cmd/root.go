package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/Ansh3878/matrix-jobs/internal/provider"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version  VersionCmd `cmd:"" help:"Print version."`
	Config   ConfigCmd  `cmd:"" help:"Manage configuration."`
	Serve    ServeCmd   `cmd:"" help:"Run the jobs HTTP API."`
	Search   SearchCmd  `cmd:"" help:"Search job listings across all providers."`
	Remotive SourceCmd  `cmd:"" name:"remotive" help:"Search Remotive only."`
	Jsearch  SourceCmd  `cmd:"" name:"jsearch" help:"Search JSearch only."`
}

func NewCLI() *CLI {
	return &CLI{
		Remotive: SourceCmd{Source: provider.NameRemotive},
		Jsearch:  SourceCmd{Source: provider.NameJSearch},
	}
}
