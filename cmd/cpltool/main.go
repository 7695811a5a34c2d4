// Command cpltool assembles GDAL string lists and inspects CPL settings
// from the command line.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/spatialgo/cpl"
	"github.com/spatialgo/cpl/internal/logging"
)

var logger = logging.New("cpltool")

var logErrors bool

var app = &cli.App{
	Name:  "cpltool",
	Usage: "Assemble GDAL string lists and inspect CPL settings.",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "config",
			Usage: "set GDAL configuration `KEY=VALUE` before running (repeatable)",
		},
		&cli.BoolFlag{
			Name:        "log-errors",
			Usage:       "route CPL diagnostics through the structured logger",
			Destination: &logErrors,
		},
	},
	Before: func(c *cli.Context) error {
		if logErrors {
			cpl.LogErrorsTo(logger)
		}
		for _, kv := range c.StringSlice("config") {
			key, value, found := strings.Cut(kv, "=")
			if !found {
				return fmt.Errorf("--config %q: expected KEY=VALUE", kv)
			}
			if err := cpl.SetConfigOption(key, value); err != nil {
				return fmt.Errorf("--config %q: %w", kv, err)
			}
		}
		return nil
	},
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func init() {
	defineCommand(&cli.Command{
		Name:  "version",
		Usage: "Show the linked GDAL library version",
		Action: func(c *cli.Context) error {
			banner, err := cpl.VersionInfo("--version")
			if err != nil {
				return err
			}
			fmt.Println(banner)
			return nil
		},
	})
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	if e := app.Run(os.Args); e != nil {
		logger.Fatal("command failed", zap.Error(e))
	}
}
