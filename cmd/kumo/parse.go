package main

import (
	"encoding/json"
	"fmt"

	"github.com/kumoweb/kumo/web"

	"github.com/urfave/cli/v2"
)

var cmdParse = &cli.Command{
	Name:      "parse",
	Usage:     "split a URL into host, port, path, and searchpart",
	ArgsUsage: `<url>`,
	Flags:     []cli.Flag{},
	Action:    runParse,
}

func runParse(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide URL as an argument")
	}

	u, err := web.NewURL(s).Parse()
	if err != nil {
		return err
	}

	out := struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		Path       string `json:"path"`
		Searchpart string `json:"searchpart"`
	}{
		Host:       u.Host(),
		Port:       u.Port(),
		Path:       u.Path(),
		Searchpart: u.Searchpart(),
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
