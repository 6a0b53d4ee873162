package commands

import (
	"strings"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/enrich"
	"github.com/activeintel/iocdb/pkg/geo"
	"github.com/activeintel/iocdb/pkg/ioc"
	"github.com/activeintel/iocdb/pkg/ranges"
	"github.com/activeintel/iocdb/pkg/source"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "enrich",
		Usage:     "Print the full enrichment record for an indicator",
		ArgsUsage: "TYPE VALUE",
		Flags: []cli.Flag{
			configFlag,
			databaseFlag,
		},
		Action: enrichIndicator,
	}

	bootstrapCommands(command)
}

func enrichIndicator(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.NewExitError("Specify an indicator type and value, e.g. enrich IPV4 1.2.3.4", -1)
	}
	kind := data.IOCType(strings.ToUpper(c.Args().Get(0)))
	if !data.ValidIOCType(kind) {
		return cli.NewExitError("Unknown indicator type "+c.Args().Get(0), -1)
	}

	res := initResources(c)

	enricher := enrich.NewEnricher(
		ioc.NewService(ioc.NewMongoRepository(res), source.NewMongoRepository(res)),
		geo.NewMongoRepository(res),
		ranges.NewMongoRepository(res),
	)

	result, err := enricher.Enrich(kind, c.Args().Get(1))
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	err = printJSON(result)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}
	return nil
}
