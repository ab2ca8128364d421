// Command rustfmt is a non-normative demo binary: it exercises the rustpp
// façade against a handful of built-in sample ASTs (there is no parser in
// this module's scope, so it cannot format arbitrary source files).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/repr"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"

	"rustpp"
	"rustpp/internal/ast"
	"rustpp/internal/demo"
)

// fileConfig is the shape of an optional `.rustfmt.yaml`: width/indent
// defaults a run's flags may override.
type fileConfig struct {
	Width  int `yaml:"width"`
	Indent int `yaml:"indent"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func reportError(err error) {
	wrapped := tracerr.Wrap(err)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		tracerr.PrintSourceColor(wrapped)
		return
	}
	fmt.Fprintln(os.Stderr, wrapped)
}

func resolveSample(name string) (*ast.File, error) {
	f := demo.Sample(name)
	if f == nil {
		return nil, fmt.Errorf("unknown sample %q (available: %v)", name, demo.Names)
	}
	return f, nil
}

func main() {
	app := &cli.App{
		Name:  "rustfmt",
		Usage: "demo driver for the rustpp pretty-printer façade",
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			reportError(err)
			os.Exit(1)
		},
		Commands: []*cli.Command{
			formatCommand(),
			benchCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func formatCommand() *cli.Command {
	return &cli.Command{
		Name:  "format",
		Usage: "render a built-in sample AST",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sample", Value: "point", Usage: "sample name: " + fmt.Sprint(demo.Names)},
			&cli.IntFlag{Name: "width", Value: 0, Usage: "override config/default width"},
			&cli.IntFlag{Name: "indent", Value: 0, Usage: "override config/default indent"},
			&cli.StringFlag{Name: "config", Value: ".rustfmt.yaml", Usage: "path to a width/indent config file"},
			&cli.BoolFlag{Name: "debug-ast", Value: false, Usage: "dump the sample AST with repr before formatting"},
		},
		Action: func(c *cli.Context) error {
			sample, err := resolveSample(c.String("sample"))
			if err != nil {
				return err
			}
			if c.Bool("debug-ast") {
				repr.Println(sample)
			}
			opts, err := resolveOptions(c)
			if err != nil {
				return err
			}
			out, err := rustpp.Pretty(sample, opts)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "render a sample repeatedly and report size/timing",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sample", Value: "point"},
			&cli.IntFlag{Name: "iterations", Value: 1000},
			&cli.StringFlag{Name: "config", Value: ".rustfmt.yaml"},
			&cli.IntFlag{Name: "width", Value: 0},
			&cli.IntFlag{Name: "indent", Value: 0},
		},
		Action: func(c *cli.Context) error {
			sample, err := resolveSample(c.String("sample"))
			if err != nil {
				return err
			}
			opts, err := resolveOptions(c)
			if err != nil {
				return err
			}
			iterations := c.Int("iterations")
			if iterations <= 0 {
				iterations = 1
			}

			start := time.Now()
			var out string
			for i := 0; i < iterations; i++ {
				out, err = rustpp.Pretty(sample, opts)
				if err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			fmt.Printf("sample %q: %s output, %d iterations, started %s\n",
				c.String("sample"),
				humanize.Bytes(uint64(len(out))),
				iterations,
				humanize.RelTime(start, start.Add(elapsed), "ago", "from now"),
			)
			return nil
		},
	}
}

func resolveOptions(c *cli.Context) (rustpp.Options, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return rustpp.Options{}, err
	}
	opts := rustpp.DefaultOptions()
	if cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if cfg.Indent > 0 {
		opts.Indent = cfg.Indent
	}
	if w := c.Int("width"); w > 0 {
		opts.Width = w
	}
	if in := c.Int("indent"); in > 0 {
		opts.Indent = in
	}
	return opts, nil
}
