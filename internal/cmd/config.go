package cmd

import (
	"fmt"
	"strings"

	"github.com/Ansh3878/matrix-jobs/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write a default config file."`
	Path PathConfigCmd `cmd:"" help:"Print config directory."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

func (c *InitConfigCmd) Run(ctx *Context) error {
	paths, err := config.Init()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		_, err := fmt.Fprintf(ctx.Out, "Config already initialized at %s\n", ctx.ConfigDir)
		return err
	}
	_, err = fmt.Fprintf(ctx.Out, "Created: %s\n", strings.Join(paths, ", "))
	return err
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Out, ctx.ConfigDir)
	return err
}
