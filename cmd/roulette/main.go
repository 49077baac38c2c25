package main

import (
	"github.com/alecthomas/kong"
)

// version задаётся через ldflags при сборке
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Serve   ServeCmd         `cmd:"" help:"Run the roulette service"`
	Token   TokenCmd         `cmd:"" help:"Mint an access token for a chat session"`
	Spin    SpinCmd          `cmd:"" help:"Resolve one bet offline and print the outcome"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("roulette"),
		kong.Description("Roulette game service for chat bridges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
