package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/activeintel/iocdb/resources"
	"github.com/blang/semver"
	"github.com/google/go-github/github"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

//Strings used for informing the user of a new version.
var informFmtStr = "\nTheres a new %s version of iocdb %s available at:\nhttps://github.com/activeintel/iocdb/releases\n"
var versions = []string{"Major", "Minor", "Patch"}

//GetVersionPrinter prints the version and any available upgrade
func GetVersionPrinter() func(*cli.Context) {
	return func(c *cli.Context) {
		fmt.Printf("%s version %s\n", c.App.Name, c.App.Version)
		fmt.Print(updateCheck(c.String("config")))
	}
}

//updateCheck performs a check for a newer release against the git
//repository and returns a notice when one is available
func updateCheck(configFile string) string {
	res := resources.InitResources(configFile)

	if res.Config.S.UserConfig.UpdateCheckFrequency <= 0 {
		return ""
	}

	newVersion, err := getRemoteVersion()
	if err != nil {
		return ""
	}

	res.Log.WithFields(log.Fields{
		"LastUpdateCheck": time.Now(),
		"NewestVersion":   fmt.Sprint(newVersion),
	}).Info("Checking for new version")

	if newVersion.GT(res.Config.R.Version) {
		return informUser(res.Config.R.Version, newVersion)
	}

	return ""
}

// Returns the first index where v1 is greater than v2
func versionDiffIndex(v1 semver.Version, v2 semver.Version) int {
	if v1.Major > v2.Major {
		return 0
	}
	if v1.Minor > v2.Minor {
		return 1
	}
	return 2
}

func getRemoteVersion() (semver.Version, error) {
	client := github.NewClient(nil)
	refs, _, err := client.Git.GetRefs(context.Background(), "activeintel", "iocdb", "refs/tags/v")

	if err == nil {
		s := strings.TrimPrefix(*refs[len(refs)-1].Ref, "refs/tags/")
		return semver.ParseTolerant(s)
	}
	return semver.Version{}, err
}

// Assembles a notice for the user informing them of an upgrade.
func informUser(local semver.Version, remote semver.Version) string {
	return fmt.Sprintf(informFmtStr,
		versions[versionDiffIndex(remote, local)],
		fmt.Sprint(remote))
}
