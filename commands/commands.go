package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/activeintel/iocdb/pkg/query"
	"github.com/activeintel/iocdb/resources"
	"github.com/activeintel/iocdb/util"
	"github.com/urfave/cli"
)

// initResources loads the resource bundle and applies the database
// override when one was given
func initResources(c *cli.Context) *resources.Resources {
	res := resources.InitResources(c.String("config"))
	if c.String("database") != "" {
		res.DB.SelectDB(c.String("database"))
	}
	return res
}

var allCommands []cli.Command

// bootstrapCommands simply adds a given command to the allCommands slice
func bootstrapCommands(commands ...cli.Command) {
	for _, command := range commands {
		allCommands = append(allCommands, command)
	}
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	return allCommands
}

// below are some prebuilt flags that get used often in various commands
var (
	// configFlag allows users to specify an alternate config file to use
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "use `PATH` as the configuration file",
		Value: "",
	}

	// databaseFlag runs a command against a database other than the
	// configured one
	databaseFlag = cli.StringFlag{
		Name:  "database, d",
		Usage: "run the command against `DATABASE` instead of the configured one",
		Value: "",
	}

	// jsonFlag prints the results as json instead of a table
	jsonFlag = cli.BoolFlag{
		Name:  "json, j",
		Usage: "print the results as json",
	}

	pageFlag = cli.IntFlag{
		Name:  "page, p",
		Usage: "print page `NUMBER` of the results",
		Value: 1,
	}

	limitFlag = cli.IntFlag{
		Name:  "limit, l",
		Usage: "print `NUMBER` results per page",
		Value: 25,
	}

	searchFlag = cli.StringFlag{
		Name:  "search, s",
		Usage: "only print indicators whose value contains `TEXT`",
		Value: "",
	}

	sortFlag = cli.StringFlag{
		Name:  "sort",
		Usage: "sort the results on `FIELD`",
		Value: "",
	}

	directionFlag = cli.StringFlag{
		Name:  "direction",
		Usage: "sort direction, asc or desc",
		Value: "desc",
	}

	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "only print results observed on or after `DATE` (2006-01-02)",
		Value: "",
	}

	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "only print results observed on or before `DATE` (2006-01-02)",
		Value: "",
	}

	filterFlag = cli.StringSliceFlag{
		Name:  "filter, f",
		Usage: "only print results matching `FIELD=VALUE`, may be repeated",
	}
)

// querySpec assembles a listing query from the shared paging, search,
// sort, window and filter flags
func querySpec(c *cli.Context) (query.Spec, error) {
	spec := query.Spec{
		Page:      c.Int("page"),
		PerPage:   c.Int("limit"),
		Search:    c.String("search"),
		SortField: c.String("sort"),
		SortDesc:  c.String("direction") != "asc",
	}
	if spec.Page < 1 {
		spec.Page = 1
	}
	if spec.PerPage < 1 {
		spec.PerPage = 25
	}

	for _, raw := range c.StringSlice("filter") {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return spec, fmt.Errorf("filter %q is not of the form FIELD=VALUE", raw)
		}
		if spec.Filters == nil {
			spec.Filters = make(map[string][]string)
		}
		spec.Filters[parts[0]] = append(spec.Filters[parts[0]], parts[1])
	}

	if c.String("from") != "" {
		from, err := time.Parse(util.DayFormat, c.String("from"))
		if err != nil {
			return spec, fmt.Errorf("could not parse date %q: %s", c.String("from"), err.Error())
		}
		spec.DateFrom = &from
	}
	if c.String("to") != "" {
		to, err := time.Parse(util.DayFormat, c.String("to"))
		if err != nil {
			return spec, fmt.Errorf("could not parse date %q: %s", c.String("to"), err.Error())
		}
		spec.DateTo = &to
	}

	return spec, nil
}
