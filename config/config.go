package config

import (
	"io/ioutil"
	"os"
	"reflect"

	"github.com/creasty/defaults"
)

//Version is filled at compile time with the git version of iocdb
var Version = "undefined"

//ExactVersion is filled at compile time with the exact git version of iocdb
var ExactVersion = "undefined"

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
		T TableCfg
	}
)

//LoadConfig initializes a Config from a file on disk, filling in
//defaults for any unspecified values
func LoadConfig(cfgPath string) (*Config, error) {
	config := &Config{}

	// Initialize table config to the default values
	if err := defaults.Set(&config.T); err != nil {
		return nil, err
	}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	if cfgPath == "" {
		cfgPath = "/etc/iocdb/config.yaml"
	}

	if _, err := os.Stat(cfgPath); err != nil {
		return nil, err
	}

	contents, err := ioutil.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}

	// Deserialize the yaml file contents into the static config
	if err := parseStaticConfig(contents, &config.S); err != nil {
		return nil, err
	}

	// Use the static config to initialize the running config
	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}

// expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		}
	}
}
