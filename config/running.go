package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/activecm/mgosec"
	"github.com/blang/semver"
)

type (
	//RunningCfg holds configuration options that are parsed at run time
	RunningCfg struct {
		MongoDB    MongoDBRunningCfg
		Enrichment EnrichmentRunningCfg
		Version    semver.Version
	}

	//MongoDBRunningCfg holds parsed information for connecting to MongoDB
	MongoDBRunningCfg struct {
		AuthMechanismParsed mgosec.AuthMechanism
		TLS                 struct {
			TLSConfig *tls.Config
		}
	}

	//EnrichmentRunningCfg holds the parsed reference timezone
	EnrichmentRunningCfg struct {
		TimezoneParsed *time.Location
	}
)

// initRunningConfig uses data in the static config to initialize the running config
func initRunningConfig(static *StaticCfg, running *RunningCfg) error {
	var err error

	//parse the tls configuration
	if static.MongoDB.TLS.Enabled {
		tlsConf := &tls.Config{}
		if !static.MongoDB.TLS.VerifyCertificate {
			tlsConf.InsecureSkipVerify = true
		}
		if len(static.MongoDB.TLS.CAFile) > 0 {
			pem, err2 := ioutil.ReadFile(static.MongoDB.TLS.CAFile)
			err = err2
			if err != nil {
				fmt.Println("[!] Could not read MongoDB CA file")
			} else {
				tlsConf.RootCAs = x509.NewCertPool()
				tlsConf.RootCAs.AppendCertsFromPEM(pem)
			}
		}
		running.MongoDB.TLS.TLSConfig = tlsConf
	}

	//parse out the mongo authentication mechanism
	authMechanism, err := mgosec.ParseAuthMechanism(
		static.MongoDB.AuthMechanism,
	)
	if err != nil {
		authMechanism = mgosec.None
		fmt.Println("[!] Could not parse MongoDB authentication mechanism")
	}
	running.MongoDB.AuthMechanismParsed = authMechanism

	//parse the reference timezone used for calendar day windows
	running.Enrichment.TimezoneParsed, err = time.LoadLocation(static.Enrichment.Timezone)
	if err != nil {
		running.Enrichment.TimezoneParsed = time.UTC
		fmt.Println("[!] Could not parse Enrichment timezone, using UTC")
	}

	running.Version, err = semver.ParseTolerant(static.Version)
	return err
}
