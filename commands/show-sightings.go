package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/ioc"
	"github.com/globalsign/mgo/bson"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-sightings",
		Usage:     "Print the raw indicator sightings of one indicator type to standard out",
		ArgsUsage: "TYPE",
		Flags: []cli.Flag{
			configFlag,
			databaseFlag,
			jsonFlag,
			pageFlag,
			limitFlag,
			sortFlag,
			directionFlag,
			fromFlag,
			toFlag,
			filterFlag,
		},
		Action: showSightings,
	}

	bootstrapCommands(command)
}

func showSightings(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("Specify an indicator type, e.g. show-sightings IPV4", -1)
	}
	kind := data.IOCType(strings.ToUpper(c.Args().Get(0)))
	if !data.ValidIOCType(kind) {
		return cli.NewExitError("Unknown indicator type "+c.Args().Get(0), -1)
	}

	spec, err := querySpec(c)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	res := initResources(c)

	page, err := ioc.NewMongoRepository(res).ListRaw(kind, spec)
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

	docs, _ := page.Data.([]bson.M)
	showSightingsReport(kind, docs)
	fmt.Println(pageFooter(page))
	return nil
}

func showSightingsReport(kind data.IOCType, docs []bson.M) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Values", "Source", "Created"})

	for _, doc := range docs {
		source := ""
		if ref, ok := doc["source_ref"].(bson.M); ok {
			source = cell(ref["key"])
		}
		values := ""
		if keys, ok := doc["keys"].(bson.M); ok {
			values = cell(keys[string(kind)])
		}
		table.Append([]string{
			cell(doc["id"]), values, source, cell(doc["created_at"]),
		})
	}
	table.Render()
}
