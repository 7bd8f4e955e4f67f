package main

import (
	"fmt"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func queryMain(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: query requires a file and an expression", cli.ErrUsage)
	}
	doc, err := jsondoc.ReadFile(args[0])
	if err != nil {
		return err
	}
	res, err := query(doc, args[1])
	if err != nil {
		return err
	}
	cfg.logger().Debug("query", "expr", args[1], "result", res)
	_, err = fmt.Fprintln(cc.Out, res)
	return err
}

// query evaluates an expr-lang expression with the top-level labels of d
// bound as variables, and returns the result as text.
func query(d *jsondoc.Document, input string) (string, error) {
	var env map[string]any
	if err := jsondoc.Bind(d, &env); err != nil {
		return "", err
	}
	program, err := expr.Compile(input, expr.Env(env))
	if err != nil {
		return "", fmt.Errorf("could not compile %q: %w", input, err)
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return "", fmt.Errorf("could not evaluate %q: %w", input, err)
	}
	// Results that fit the value model print in document syntax.
	if v, err := jsondoc.ValueOf(res); err == nil {
		return jsondoc.RenderValue(v), nil
	}
	return fmt.Sprint(res), nil
}
