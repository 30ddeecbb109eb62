package main

import (
	"context"
	"os"
	"os/signal"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("ropair")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ropair"
	app.Usage = "run values through a result pipeline and print (error, value) pairs"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "debug, info, warn or error",
		},
	}
	app.Before = func(cctx *cli.Context) error {
		lvl, err := logging.LevelFromString(cctx.String("log-level"))
		if err != nil {
			return err
		}
		logging.SetAllLoggers(lvl)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "parse",
			Usage:     "parse every argument as an integer",
			ArgsUsage: "VALUE...",
			Action:    cmdParse,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "workers",
					Aliases: []string{"w"},
					Value:   1,
					Usage:   "number of parallel parse workers",
				},
			},
		},
	}
	return app
}

func cmdParse(cctx *cli.Context) error {
	inputs := cctx.Args().Slice()
	if len(inputs) == 0 {
		return cli.Exit("nothing to parse", 1)
	}

	pairs := parseAll(cctx.Context, inputs, cctx.Int("workers"))
	log.Infof("parsed %d of %d inputs", len(pairs), len(inputs))

	return render(cctx.App.Writer, inputs, pairs)
}
