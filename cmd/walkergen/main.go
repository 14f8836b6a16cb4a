package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"strings"

	keplerian "github.com/ralphmcralph/keplerian-constellation-propagator"
	"github.com/spf13/viper"
)

const (
	defaultScenario = "~~unset~~"
	dateTimeFormat  = "2006-01-02 15:04:05"
)

var (
	scenario string
	numCPUs  int
	debug    bool
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "constellation scenario TOML file")
	flag.IntVar(&numCPUs, "cpus", -1, "number of CPUs to use (set to 0 for max CPUs)")
	flag.BoolVar(&debug, "debug", false, "debug everything (really verbose)")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	availableCPUs := runtime.NumCPU()
	if numCPUs <= 0 || numCPUs > availableCPUs {
		numCPUs = availableCPUs
	}
	runtime.GOMAXPROCS(numCPUs)
	log.Printf("[info] running on %d CPUs\n", numCPUs)

	// Load scenario
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}
	name := viper.GetString("general.name")
	if name == "" {
		name = scenario
	}
	verbose = viper.GetBool("general.verbose") || debug

	spec := readConstellation(name)
	window := readPropagation(spec.Epoch)
	conf := readExport(name)
	if verbose {
		log.Printf("[conf] constellation: %d satellites in %d planes (phasing %d)\n", spec.Satellites, spec.Planes, spec.Phasing)
		log.Printf("[conf] sma: %.1f m, inclination: %.3f deg, epoch: %s\n", spec.SemiMajorAxis, spec.Inclination, spec.Epoch.UTC().Format(dateTimeFormat))
		log.Printf("[conf] window: %s -> %s every %s\n", window.Start.UTC().Format(dateTimeFormat), window.End.UTC().Format(dateTimeFormat), window.Step)
	}

	sats, err := keplerian.WalkerDelta(spec)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	log.Printf("[info] generated %d satellites\n", len(sats))

	eph := keplerian.NewEphemeris(name, sats, window, numCPUs, conf)
	if err := eph.Generate(context.Background()); err != nil {
		log.Fatalf("[error] %s", err)
	}
	log.Println("[info] Done")
}
