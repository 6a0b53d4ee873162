package commands

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/activeintel/iocdb/pkg/ranges"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
)

func init() {
	command := cli.Command{
		Name:      "import-ranges",
		Usage:     "Register network ranges from a csv file of cidr,org_id,org_name rows",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			configFlag,
			databaseFlag,
		},
		Action: importRanges,
	}

	bootstrapCommands(command)
}

func importRanges(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("Specify a csv file to import", -1)
	}

	file, err := os.Open(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 3
	rows, err := reader.ReadAll()
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	res := initResources(c)
	repo := ranges.NewMongoRepository(res)

	err = repo.CreateIndexes()
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	p := mpb.New(mpb.WithWidth(20))
	bar := p.AddBar(int64(len(rows)),
		mpb.PrependDecorators(
			decor.Name("\t[-] Importing Ranges:", decor.WC{W: 30, C: decor.DidentRight}),
			decor.CountersNoUnit(" %d / %d ", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	imported := 0
	failed := 0
	for _, row := range rows {
		_, err := repo.Register(row[0], row[1], row[2])
		if err != nil {
			failed++
			res.Log.WithFields(log.Fields{
				"cidr":  row[0],
				"error": err.Error(),
			}).Error("could not register network range")
		} else {
			imported++
		}
		bar.IncrBy(1)
	}
	p.Wait()

	fmt.Printf("imported %d ranges, %d failed\n", imported, failed)
	if failed > 0 {
		return cli.NewExitError("some ranges could not be imported", -1)
	}
	return nil
}
