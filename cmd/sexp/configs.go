package main

import (
	"io"
	"os"

	"github.com/signadot/sexp-format/go-sexp/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type JSONConfig struct {
	*MainConfig

	Indent bool `cli:"name=i aliases=indent desc='indent json output'"`

	JSON *cli.Command
}

type CountConfig struct {
	*MainConfig

	Count *cli.Command
}
