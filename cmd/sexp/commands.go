package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "sexp").
		WithSynopsis("sexp [opts] command [opts]").
		WithDescription("sexp is a tool for working with S-expression documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sexpMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			JSONCommand(cfg),
			CountCommand(cfg))
}

func sexpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
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

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("parse S-expression files and print them in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return sexpFmt(cfg, cc, args)
		})
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.JSON, "json").
		WithAliases("j").
		WithSynopsis("json [-i] [files]").
		WithDescription("print the JSON representation of S-expression files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sexpJSON(cfg, cc, args)
		})
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Count, "count").
		WithAliases("c").
		WithSynopsis("count [files]").
		WithDescription("count nodes by type in S-expression files").
		WithRun(func(cc *cli.Context, args []string) error {
			return sexpCount(cfg, cc, args)
		})
}
