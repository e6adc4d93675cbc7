package cmd

import (
	log "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli"
)

var logger = log.Logger("keep-cmd")

// SigningCommand contains the definition of the `signing` command-line
// subcommand and its own subcommands.
var SigningCommand = cli.Command{
	Name:  "signing",
	Usage: "Provides several tools useful for out-of-band signing",
	Before: func(c *cli.Context) error {
		// disable the regular logger unless a level was requested explicitly
		if !c.GlobalIsSet("log-level") {
			_ = log.SetLogLevelRegex("keep.*", "fatal")
		}
		return nil
	},
	Subcommands: []cli.Command{
		EOSSigningCommand,
	},
}
