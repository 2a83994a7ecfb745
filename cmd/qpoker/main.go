package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Play a session against scripted opponents"`
	Odds    OddsCmd          `cmd:"" help:"Estimate equity for a hand and recommend an action"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("qpoker"),
		kong.Description("Texas Hold'em engine with equity-driven advice"),
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
