package keplerian

import (
	"log"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _kepconfig{outputDir: "."}
)

// _kepconfig is a "hidden" struct, just use `kepConfig`
type _kepconfig struct {
	outputDir string
}

// kepConfig returns the package configuration, loading it on first use.
// The configuration file is optional: `conf.toml` is searched in the
// directory named by the KEPLERIAN_CONFIG environment variable, then in
// the working directory, and every setting has a default.
func kepConfig() _kepconfig {
	cfgOnce.Do(func() {
		v := viper.New()
		v.SetConfigName("conf")
		if confPath := os.Getenv("KEPLERIAN_CONFIG"); confPath != "" {
			v.AddConfigPath(confPath)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			log.Printf("[conf] no conf.toml found, using defaults")
			return
		}
		if outputDir := v.GetString("general.output_dir"); outputDir != "" {
			config.outputDir = outputDir
		}
	})
	return config
}
