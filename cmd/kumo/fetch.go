package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kumoweb/kumo/web"

	"github.com/urfave/cli/v2"
)

var cmdFetch = &cli.Command{
	Name:      "fetch",
	Usage:     "fetch a page over plain HTTP and print it",
	ArgsUsage: `<url>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "file path to write body to ('-' for stdout)",
			Value:   "-",
		},
		&cli.BoolFlag{
			Name:  "headers",
			Usage: "also print status line and response headers",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "overall request timeout",
			Value: 30 * time.Second,
		},
	},
	Action: runFetch,
}

func runFetch(cctx *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), cctx.Duration("timeout"))
	defer cancel()
	configLogger(cctx, os.Stderr)

	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide URL as an argument")
	}

	u, err := web.NewURL(s).Parse()
	if err != nil {
		return err
	}

	client := web.NewClient(0, 0)
	resp, err := client.Get(ctx, u)
	if err != nil {
		return err
	}

	out, err := getFileOrStdout(cctx.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()

	if cctx.Bool("headers") {
		fmt.Fprintf(out, "%s %d %s\n", resp.Version, resp.StatusCode, resp.Reason)
		for _, h := range resp.Headers {
			fmt.Fprintf(out, "%s: %s\n", h.Name, h.Value)
		}
		fmt.Fprintln(out)
	}

	_, err = fmt.Fprint(out, resp.Body)
	return err
}
