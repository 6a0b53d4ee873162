package commands

import (
	"fmt"

	"github.com/activeintel/iocdb/pkg/ioc"
	"github.com/activeintel/iocdb/pkg/ranges"
	"github.com/activeintel/iocdb/pkg/source"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "init-db",
		Usage: "Create the collections and indexes backing the indicator, source and range data",
		Flags: []cli.Flag{
			configFlag,
			databaseFlag,
		},
		Action: initDB,
	}

	bootstrapCommands(command)
}

func initDB(c *cli.Context) error {
	res := initResources(c)

	collections := []string{
		res.Config.T.IOC.IOCTable,
		res.Config.T.IOC.SourceTable,
		res.Config.T.Reference.NetworkTable,
		res.Config.T.Reference.OrganizationTable,
		res.Config.T.Reference.LocationTable,
	}
	for _, name := range collections {
		if res.DB.CollectionExists(name) {
			continue
		}
		err := res.DB.CreateCollection(name, nil)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("could not create %s: %s", name, err.Error()), -1)
		}
	}

	repos := map[string]interface{ CreateIndexes() error }{
		"indicators": ioc.NewMongoRepository(res),
		"sources":    source.NewMongoRepository(res),
		"ranges":     ranges.NewMongoRepository(res),
	}

	for name, repo := range repos {
		err := repo.CreateIndexes()
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("could not index %s: %s", name, err.Error()), -1)
		}
	}

	fmt.Println("database collections and indexes are in place")
	return nil
}
