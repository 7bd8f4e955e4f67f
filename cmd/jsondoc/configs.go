package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	V       bool `cli:"name=v desc='enable debug logging'"`
	Color   bool `cli:"name=color desc='always colour output'"`
	NoColor bool `cli:"name=no-color desc='never colour output'"`

	Main *cli.Command

	log *slog.Logger
}

func jsondocMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: at most one of -color, -no-color may be given", cli.ErrUsage)
	}
	cfg.log = newLogger(os.Stderr, cfg.V)
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.log
}

// colorize reports whether output written to w should carry colour.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type palette struct {
	pos func(string, ...any) string
	msg func(string, ...any) string
	del func(string, ...any) string
	ins func(string, ...any) string
}

func (cfg *MainConfig) palette(w io.Writer) *palette {
	on := cfg.colorize(w)
	mk := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintfFunc()
	}
	return &palette{
		pos: mk(color.Bold),
		msg: mk(color.FgRed),
		del: mk(color.FgRed),
		ins: mk(color.FgGreen),
	}
}

type FmtConfig struct {
	*MainConfig
	Indent int  `cli:"name=indent desc='indent nested values by n spaces, 0 for compact output'"`
	Write  bool `cli:"name=w desc='write the result back to the source file'"`
	Diff   bool `cli:"name=d desc='print a diff between the source and its rendering'"`
	JSON   bool `cli:"name=json desc='read standard JSON input'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To string `cli:"name=to desc='output format: json or yaml'"`

	Convert *cli.Command
}
