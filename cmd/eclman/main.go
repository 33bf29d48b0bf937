package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/resdev/eclman/internal/cli"
	"github.com/resdev/eclman/internal/config"
)

func main() {
	// Load configuration from files/environment (plus provenance metadata).
	cfg, meta, err := config.LoadWithMeta()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
		if root := os.Getenv("ECLPATH"); root != "" {
			cfg.ECLPath = root
		}
		meta = nil
	}

	var c cli.CLI

	// Config defaults are applied before parsing; explicit flags win.
	vars := kong.Vars{
		"config_format": cfg.Format,
	}

	ctx := kong.Parse(&c,
		kong.Name("eclman"),
		kong.Description("Open the reservoir simulator manuals and check simulator input files.\n\nRun without arguments to open the manual of the newest installed release; -v VERSION picks another."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)

	// Record which flags were explicitly provided so commands can distinguish
	// CLI overrides from config defaults.
	flagsSet := map[string]bool{}
	for _, p := range ctx.Path {
		if p.Flag != nil {
			flagsSet[p.Flag.Name] = true
		}
	}
	globals.FlagsSet = flagsSet
	if meta != nil {
		globals.ConfigFile = meta.ConfigFile
		globals.ConfigSources = config.ComputeSources(meta, flagsSet)
	} else {
		globals.ConfigSources = config.ComputeSources(nil, flagsSet)
	}

	err = ctx.Run(globals)
	if err != nil {
		globals.Debug("%v", err)
	}
	_ = globals.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
