package main

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/scott-cotton/cli"
)

func getMain(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a file and at least one label", cli.ErrUsage)
	}
	var doc *jsondoc.Document
	if args[0] == "-" {
		src, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		doc, err = jsondoc.Parse(src)
		if err != nil {
			return err
		}
	} else {
		doc, err = jsondoc.ReadFile(args[0])
		if err != nil {
			return err
		}
	}
	v, err := lookup(doc, args[1:])
	if err != nil {
		return err
	}
	cfg.logger().Debug("found", "path", args[1:], "kind", v.Kind())
	_, err = fmt.Fprintln(cc.Out, jsondoc.RenderValue(v))
	return err
}

// lookup follows labels through nested objects, taking the first entry with
// each label.
func lookup(doc *jsondoc.Document, labels []string) (jsondoc.Value, error) {
	var cur jsondoc.Value = doc
	for i, label := range labels {
		obj, ok := cur.(*document.Document)
		if !ok {
			return nil, fmt.Errorf("%q is %s, not an object", labels[i-1], cur.Kind())
		}
		v, ok := obj.Get(label)
		if !ok {
			return nil, fmt.Errorf("label %q not found", label)
		}
		cur = v
	}
	return cur, nil
}
