package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/scott-cotton/cli"
)

func checkMain(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	p := cfg.palette(os.Stderr)
	if len(args) == 0 {
		src, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		if !checkSource(p, os.Stderr, "<stdin>", src) {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	failed := 0
	for _, file := range args {
		ok := checkFile(p, os.Stderr, file)
		cfg.logger().Debug("checked", "path", file, "ok", ok)
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(p *palette, w io.Writer, path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		report(p, w, path, &jsondoc.IOError{Op: "read", Path: path, Err: err})
		return false
	}
	return checkSource(p, w, path, src)
}

func checkSource(p *palette, w io.Writer, name string, src []byte) bool {
	if _, err := jsondoc.Parse(src); err != nil {
		report(p, w, name, err)
		return false
	}
	return true
}

// report writes err as a single "name:line:col: message" diagnostic.
func report(p *palette, w io.Writer, name string, err error) {
	var (
		lexErr   *jsondoc.LexError
		parseErr *jsondoc.ParseError
		ioErr    *jsondoc.IOError
	)
	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintf(w, "%s %s\n", p.pos("%s:%d:%d:", name, lexErr.Line, lexErr.Column), p.msg("%s", lexErr.Message))
	case errors.As(err, &parseErr):
		fmt.Fprintf(w, "%s %s\n", p.pos("%s:%d:%d:", name, parseErr.Line, parseErr.Column), p.msg("%s", parseErr.Message))
	case errors.As(err, &ioErr):
		fmt.Fprintf(w, "%s %s\n", p.pos("%s:", name), p.msg("%v", ioErr.Err))
	default:
		fmt.Fprintf(w, "%s %s\n", p.pos("%s:", name), p.msg("%v", err))
	}
}
