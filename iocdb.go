package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/activeintel/iocdb/commands"
	"github.com/activeintel/iocdb/config"

	"github.com/urfave/cli"
)

// Entry point of iocdb
func main() {
	app := cli.NewApp()
	app.Name = "iocdb"
	app.Usage = "Aggregate, store and enrich security indicators."
	app.Version = config.Version

	cli.VersionPrinter = commands.GetVersionPrinter()

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "use `PATH` as the configuration file",
			Value: "",
		},
	}

	// Define commands used with this application
	app.Commands = commands.Commands()

	runtime.GOMAXPROCS(runtime.NumCPU())
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
