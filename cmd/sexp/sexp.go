package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/sexp-format/go-sexp/encode"
	"github.com/signadot/sexp-format/go-sexp/ir"
	"github.com/signadot/sexp-format/go-sexp/parse"

	"github.com/scott-cotton/cli"
)

// pool shared across documents so that dropped trees feed later parses
var nodePool = ir.NewNodePool()

func sexpFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(args, func(node *ir.Node) error {
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err := io.WriteString(cc.Out, "\n")
		return err
	})
}

func sexpJSON(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cc.Out)
	if cfg.Indent {
		enc.SetIndent("", "  ")
	}
	return eachDoc(args, func(node *ir.Node) error {
		return enc.Encode(node)
	})
}

func sexpCount(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		return err
	}
	counts := map[ir.Type]int{}
	err = eachDoc(args, func(node *ir.Node) error {
		return node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
			if !isPost {
				counts[n.Type]++
			}
			return !isPost, nil
		})
	})
	if err != nil {
		return err
	}
	for _, t := range ir.Types() {
		if counts[t] == 0 {
			continue
		}
		fmt.Fprintf(cc.Out, "%s\t%d\n", t, counts[t])
	}
	return nil
}

// eachDoc parses every form of every input and hands it to f.  Inputs may be
// arbitrarily deep, so each parsed document is scope-bound to a dropper and
// recycled rather than torn down by the runtime.
func eachDoc(files []string, f func(*ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := docFile(file, f); err != nil {
			return err
		}
	}
	return nil
}

func docFile(file string, f func(*ir.Node) error) error {
	var (
		in  []byte
		err error
	)
	if file == "-" {
		in, err = io.ReadAll(os.Stdin)
	} else {
		in, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	nodes, err := parse.ParseAll(in,
		parse.WithFilename(file),
		parse.WithPool(nodePool))
	if err != nil {
		return err
	}
	dropper := ir.NewDropper(ir.FromSlice(nodes), ir.DropPool(nodePool))
	defer dropper.Close()
	for _, node := range nodes {
		if err := f(node); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
