package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/vslugin/long-term-booking/internal/booking"
	"github.com/vslugin/long-term-booking/internal/cli"
	"github.com/vslugin/long-term-booking/internal/config"
	"github.com/vslugin/long-term-booking/internal/constants"
	apperrors "github.com/vslugin/long-term-booking/internal/errors"
	"github.com/vslugin/long-term-booking/internal/excel"
	"github.com/vslugin/long-term-booking/internal/i18n"
	"github.com/vslugin/long-term-booking/internal/logger"
	"github.com/vslugin/long-term-booking/internal/validation"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/ltbook/config.toml"`
	Debug   bool   `help:"Enable debug logging."`
	Lang    string `help:"UI language (en|de), overrides the configured one."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive booking form." default:"1"`
	Generate cli.GenerateCmd `cmd:"" help:"Generate the booking Excel file from flags."`
	Preview  cli.PreviewCmd  `cmd:"" help:"Print the expanded bookings without writing a file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Long term desk booking Excel generator"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Lang != "" {
		if !i18n.Language(CLI.Lang).Valid() {
			apperrors.Fatalf("unknown language %q (use en or de)", CLI.Lang)
		}
		cfg.Language = CLI.Lang
	}

	configDir := filepath.Dir(config.ExpandHome(CLI.Config))
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		apperrors.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config:    cfg,
		Catalog:   i18n.NewCatalog(i18n.Language(cfg.Language)),
		Validator: validation.New(),
		Expander:  booking.New(cfg.SeatPrefix, loc),
		Writer:    excel.NewWriter(),
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
