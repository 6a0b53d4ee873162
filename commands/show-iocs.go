package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/activeintel/iocdb/pkg/ioc"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "show-iocs",
		Usage: "Print indicators grouped by value to standard out",
		Flags: []cli.Flag{
			configFlag,
			databaseFlag,
			jsonFlag,
			pageFlag,
			limitFlag,
			searchFlag,
			sortFlag,
			directionFlag,
			fromFlag,
			toFlag,
			filterFlag,
		},
		Action: showIOCs,
	}

	bootstrapCommands(command)
}

func showIOCs(c *cli.Context) error {
	spec, err := querySpec(c)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	res := initResources(c)

	page, err := ioc.NewMongoRepository(res).ListGrouped(spec)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	if c.Bool("json") {
		err = printJSON(page)
		if err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
		return nil
	}

	grouped, _ := page.Data.([]ioc.GroupedIOC)
	showIOCsReport(grouped)
	fmt.Println(pageFooter(page))
	return nil
}

func showIOCsReport(grouped []ioc.GroupedIOC) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Value", "Type", "Count", "Sources",
		"First Seen", "Last Seen", "Threat Types"})

	for _, g := range grouped {
		table.Append([]string{
			cell(g.Value), string(g.Type), i(g.Count), i(g.SourceCount),
			day(g.FirstSeen), day(g.LastSeen), strings.Join(g.ThreatTypes, ", "),
		})
	}
	table.Render()
}
