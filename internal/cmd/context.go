package cmd

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/Ansh3878/matrix-jobs/internal/config"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  string
}
