// Command regstat prints descriptive statistics and simple linear regressions
// for numeric columns of CSV files.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/sartorproj/regstat/internal/logger"
)

var noColorFlag = cli.BoolFlag{
	Name:  "no-color",
	Usage: "disable bold output",
}

// main implements the regstat cli.
func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "regstat",
		HelpName: "regstat",
		Usage:    "statistics and simple linear regression over CSV columns",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
			&noColorFlag,
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool(noColorFlag.Name) {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			&describeCommand,
			&fitCommand,
			&runCommand,
		},
	}
}
