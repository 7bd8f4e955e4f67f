package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convertMain(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: convert requires one file argument, or - for stdin", cli.ErrUsage)
	}
	var doc *jsondoc.Document
	if args[0] == "-" {
		src, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		if doc, err = jsondoc.Parse(src); err != nil {
			return err
		}
	} else if doc, err = jsondoc.ReadFile(args[0]); err != nil {
		return err
	}
	out, err := convert(doc, cfg.To)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

// convert renders d as standard JSON or YAML. The output ends in a newline.
func convert(d *jsondoc.Document, to string) ([]byte, error) {
	switch strings.ToLower(to) {
	case "", "json", "j":
		out, err := json.Marshal(d, jsontext.AllowDuplicateNames(true), jsontext.WithIndent("  "))
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml", "y":
		v, err := yamlValue(d)
		if err != nil {
			return nil, err
		}
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("%w: unknown output format %q, want json or yaml", cli.ErrUsage, to)
}

// yamlValue converts v into values the YAML encoder understands. Objects
// become ordered map slices; YAML mappings cannot hold a label twice.
func yamlValue(v document.Value) (any, error) {
	switch v := v.(type) {
	case document.String:
		return string(v), nil
	case document.Int:
		return uint64(v), nil
	case document.Float:
		return v.Float64(), nil
	case document.Bool:
		return bool(v), nil
	case document.Null:
		return nil, nil
	case document.List:
		out := make([]any, len(v))
		for i, elem := range v {
			y, err := yamlValue(elem)
			if err != nil {
				return nil, err
			}
			out[i] = y
		}
		return out, nil
	case *document.Document:
		out := make(yaml.MapSlice, 0, v.Len())
		seen := make(map[string]bool, v.Len())
		var err error
		v.Range(func(e document.Entry) bool {
			if seen[e.Label] {
				err = fmt.Errorf("label %q occurs more than once and cannot be written as YAML", e.Label)
				return false
			}
			seen[e.Label] = true
			var y any
			if y, err = yamlValue(e.Value); err != nil {
				return false
			}
			out = append(out, yaml.MapItem{Key: e.Label, Value: y})
			return true
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value %T", v)
}
