package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sartorproj/regstat/internal/config"
	"github.com/sartorproj/regstat/internal/logger"
	"github.com/sartorproj/regstat/internal/report"
	"github.com/sartorproj/regstat/series"
	"github.com/sartorproj/regstat/stats"
)

var (
	headerFlag = cli.BoolFlag{
		Name:  "header",
		Usage: "discard the first line of every CSV file",
	}
	columnFlag = cli.IntFlag{
		Name:    "column",
		Aliases: []string{"c"},
		Usage:   "0-based column index",
	}
	xFlag = cli.StringFlag{
		Name:     "x",
		Usage:    "independent variable: `SRC` is path[:column] or =v1,v2,...",
		Required: true,
	}
	yFlag = cli.StringFlag{
		Name:     "y",
		Usage:    "dependent variable: `SRC` is path[:column] or =v1,v2,...",
		Required: true,
	}
	configFlag = cli.PathFlag{
		Name:     "config",
		Usage:    "YAML analysis file",
		Required: true,
	}
)

var describeCommand = cli.Command{
	Name:      "describe",
	Usage:     "print count, mean, standard deviation, min and max of a column",
	ArgsUsage: "<csv-file>...",
	Action:    describe,
	Flags: []cli.Flag{
		&headerFlag,
		&columnFlag,
	},
}

var fitCommand = cli.Command{
	Name:   "fit",
	Usage:  "regress one column on another",
	Action: fit,
	Flags: []cli.Flag{
		&xFlag,
		&yFlag,
		&headerFlag,
	},
}

var runCommand = cli.Command{
	Name:   "run",
	Usage:  "run every dataset and pair of an analysis file",
	Action: run,
	Flags: []cli.Flag{
		&configFlag,
	},
}

func describe(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "describe")
	if ctx.NArg() == 0 {
		return errors.New("no input files")
	}

	opts := series.ColumnOptions{
		HasHeader: ctx.Bool(headerFlag.Name),
		Column:    ctx.Int(columnFlag.Name),
	}
	var rows []report.Described
	for _, path := range ctx.Args().Slice() {
		s, err := series.LoadColumn(path, opts)
		if err != nil {
			return err
		}
		log.Infof("loaded %d values from %s", s.Len(), s.Name)
		rows = append(rows, report.Described{Name: s.Name, Summary: stats.Describe(s.Values)})
	}

	report.Summaries(ctx.App.Writer, rows)
	return nil
}

func fit(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "fit")
	header := ctx.Bool(headerFlag.Name)

	xs, err := openSource(log, ctx.String(xFlag.Name), header)
	if err != nil {
		return errors.WithMessage(err, "x")
	}
	ys, err := openSource(log, ctx.String(yFlag.Name), header)
	if err != nil {
		return errors.WithMessage(err, "y")
	}

	f, err := stats.Fit(xs.Values, ys.Values)
	if err != nil {
		return errors.WithMessagef(err, "regressing %s on %s", ys.Name, xs.Name)
	}

	w := ctx.App.Writer
	report.Summaries(w, []report.Described{
		{Name: xs.Name, Summary: stats.Describe(xs.Values)},
		{Name: ys.Name, Summary: stats.Describe(ys.Values)},
	})
	report.Fits(w, []report.Fitted{{X: xs.Name, Y: ys.Name, Fit: f}})
	return nil
}

func run(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "run")

	a, err := config.Load(ctx.Path(configFlag.Name))
	if err != nil {
		return err
	}
	log.Noticef("analysis has %d datasets and %d pairs", len(a.Datasets), len(a.Pairs))

	loaded := make(map[string]*series.Series, len(a.Datasets))
	var described []report.Described
	for _, d := range a.Datasets {
		log.Debugf("loading %v", d)
		s, err := d.Open()
		if err != nil {
			return errors.WithMessagef(err, "dataset %s", d.Name)
		}
		loaded[d.Name] = s
		described = append(described, report.Described{Name: d.Name, Summary: stats.Describe(s.Values)})
	}

	var fitted []report.Fitted
	for _, p := range a.Pairs {
		f, err := stats.Fit(loaded[p.X].Values, loaded[p.Y].Values)
		if err != nil {
			return errors.WithMessagef(err, "pair %s/%s", p.X, p.Y)
		}
		fitted = append(fitted, report.Fitted{X: p.X, Y: p.Y, Fit: f})
	}

	w := ctx.App.Writer
	report.Heading(w, "Datasets")
	report.Summaries(w, described)
	if len(fitted) > 0 {
		report.Heading(w, "Regressions")
		report.Fits(w, fitted)
	}
	return nil
}

func openSource(log logger.Logger, arg string, header bool) (*series.Series, error) {
	src, err := config.ParseSource(arg, header)
	if err != nil {
		return nil, err
	}
	log.Debugf("loading %v", src)
	return src.Open()
}
