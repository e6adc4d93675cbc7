package main

import (
	"fmt"
	"os"
	"path"
	"time"

	log "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli"

	"github.com/keep-network/keep-eos/cmd"
)

const defaultConfigPath = "./configs/config.toml"

var (
	configPath string
	logLevel   string
)

func main() {
	app := cli.NewApp()
	app.Name = path.Base(os.Args[0])
	app.Usage = "CLI for EOS recoverable signatures"
	app.Compiled = time.Now()
	app.Authors = []cli.Author{
		{
			Name:  "Keep Network",
			Email: "info@keep.network",
		},
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config,c",
			Value:       defaultConfigPath,
			Destination: &configPath,
			Usage:       "full path to the configuration file",
		},
		cli.StringFlag{
			Name:        "log-level",
			Value:       "info",
			Destination: &logLevel,
			Usage:       "log level: debug, info, warn, error, fatal",
		},
	}
	app.Before = func(c *cli.Context) error {
		level, err := log.LevelFromString(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level [%s]: [%v]", logLevel, err)
		}
		log.SetAllLoggers(level)
		return nil
	}
	app.Commands = []cli.Command{
		cmd.SigningCommand,
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
