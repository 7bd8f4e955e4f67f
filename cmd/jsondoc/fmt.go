package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: at most one of -w, -d may be given", cli.ErrUsage)
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		src, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		return fmtSource(cfg, cc.Out, "<stdin>", src)
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &jsondoc.IOError{Op: "read", Path: path, Err: err}
	}
	if !cfg.Write {
		return fmtSource(cfg, w, path, src)
	}

	doc, err := decode(cfg, src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	out, err := jsondoc.Format(doc, jsondoc.Indent(cfg.Indent))
	if err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSuffix(src, []byte("\n")), out) {
		cfg.logger().Debug("already formatted", "path", path)
		return nil
	}
	cfg.logger().Debug("rewriting", "path", path, "bytes", len(out))
	return jsondoc.WriteFile(path, doc, jsondoc.Indent(cfg.Indent))
}

func fmtSource(cfg *FmtConfig, w io.Writer, name string, src []byte) error {
	doc, err := decode(cfg, src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	out, err := jsondoc.Format(doc, jsondoc.Indent(cfg.Indent))
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if cfg.Diff {
		return writeDiff(cfg.palette(w), w, name, src, out)
	}
	_, err = w.Write(out)
	return err
}

// decode parses src as a document, or as standard JSON with -json.
func decode(cfg *FmtConfig, src []byte) (*jsondoc.Document, error) {
	if !cfg.JSON {
		return jsondoc.Parse(src)
	}
	doc := jsondoc.New()
	if err := json.Unmarshal(src, doc, jsontext.AllowDuplicateNames(true)); err != nil {
		return nil, err
	}
	return doc, nil
}

// writeDiff writes a line diff turning src into out. Nothing is written when
// they are equal.
func writeDiff(p *palette, w io.Writer, name string, src, out []byte) error {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(src), string(out))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	if len(diffs) == 0 || (len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual) {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s (formatted)\n", name, name)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				sb.WriteString(p.del("-%s", line))
			case diffpatch.DiffInsert:
				sb.WriteString(p.ins("+%s", line))
			case diffpatch.DiffEqual:
				sb.WriteString(" " + line)
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
