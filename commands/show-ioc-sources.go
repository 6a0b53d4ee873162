package commands

import (
	"os"
	"time"

	"github.com/activeintel/iocdb/pkg/source"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "show-ioc-sources",
		Usage: "Print the registered indicator sources to standard out",
		Flags: []cli.Flag{
			configFlag,
			databaseFlag,
			jsonFlag,
		},
		Action: showIOCSources,
	}

	bootstrapCommands(command)
}

func showIOCSources(c *cli.Context) error {
	res := initResources(c)

	sources, err := source.NewMongoRepository(res).List()
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	if c.Bool("json") {
		err = printJSON(sources)
		if err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
		return nil
	}

	showIOCSourcesReport(sources)
	return nil
}

func showIOCSourcesReport(sources []source.Source) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Type", "Key", "URL", "Threat Type", "Created"})

	for _, src := range sources {
		table.Append([]string{
			string(src.Type), src.Key, src.URL, str(src.ThreatType),
			src.CreatedAt.Format(time.RFC3339),
		})
	}
	table.Render()
}
