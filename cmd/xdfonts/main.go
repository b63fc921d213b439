package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tsawler/xdfonts"
	"github.com/tsawler/xdfonts/format"
	"github.com/tsawler/xdfonts/report"
)

func run(ctx context.Context, cmd *cli.Command) error {
	archivePath := cmd.Args().First()
	if archivePath == "" {
		return fmt.Errorf("missing archive path (usage: xdfonts <file.xd>)")
	}

	if f, err := format.Detect(archivePath); err == nil && f != format.XD {
		slog.Warn("file does not look like an XD archive", slog.String("path", archivePath))
	}

	catalog, warnings, err := xdfonts.Open(archivePath).Fonts()
	for _, w := range warnings {
		slog.Warn(w.String())
	}
	if err != nil {
		// A failed manifest load ends the run with a diagnostic and an
		// empty report; the exit stays clean.
		slog.Error("inventory failed", slog.String("error", err.Error()))
		return nil
	}

	if err := report.Write(os.Stdout, catalog); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if cmd.Bool("embedded") {
		fonts, warnings, err := xdfonts.Open(archivePath).EmbeddedFonts()
		for _, w := range warnings {
			slog.Warn(w.String())
		}
		if err != nil {
			slog.Error("embedded font scan failed", slog.String("error", err.Error()))
			return nil
		}
		if err := report.WriteEmbedded(os.Stdout, fonts); err != nil {
			return fmt.Errorf("writing embedded font report: %w", err)
		}
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "xdfonts",
		Usage:     "List the fonts referenced by each artboard of an Adobe XD design archive",
		ArgsUsage: "<file.xd>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "embedded",
				Usage: "Also list font binaries shipped inside the archive",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
