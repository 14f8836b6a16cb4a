package main

import (
	"log"
	"time"

	keplerian "github.com/ralphmcralph/keplerian-constellation-propagator"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// readConstellation builds the Walker Delta specification from the
// [constellation] section. The orbit size is either `sma` in meters or
// `altitude` in kilometers above the equatorial radius.
func readConstellation(name string) keplerian.ConstellationSpec {
	sma := viper.GetFloat64("constellation.sma")
	if sma == 0 {
		if alt := viper.GetFloat64("constellation.altitude"); alt != 0 {
			sma = keplerian.EarthRadius + alt*1000
		}
	}
	return keplerian.ConstellationSpec{
		Name:          name,
		SemiMajorAxis: sma,
		Inclination:   viper.GetFloat64("constellation.inclination"),
		Satellites:    viper.GetInt("constellation.satellites"),
		Planes:        viper.GetInt("constellation.planes"),
		Phasing:       viper.GetInt("constellation.phasing"),
		Epoch:         confReadJDOrTime("constellation.epoch"),
	}
}

// readPropagation builds the sampling window from the [propagation]
// section. The window starts at the constellation epoch unless overridden,
// and runs either to `end` or for `duration`.
func readPropagation(epoch time.Time) keplerian.Window {
	start := epoch
	if viper.IsSet("propagation.start") {
		start = confReadJDOrTime("propagation.start")
	}
	var end time.Time
	if viper.IsSet("propagation.end") {
		end = confReadJDOrTime("propagation.end")
	} else {
		duration := viper.GetDuration("propagation.duration")
		if duration <= 0 {
			log.Fatal("either propagation.end or propagation.duration is needed")
		}
		end = start.Add(duration)
	}
	step := viper.GetDuration("propagation.step")
	if step <= 0 {
		step = keplerian.DefaultStep
	}
	return keplerian.Window{Start: start, End: end, Step: step}
}

// readExport builds the export configuration from the [general] and
// [export] sections.
func readExport(name string) keplerian.ExportConfig {
	outputdir := viper.GetString("general.outputdir")
	if len(outputdir) == 0 {
		outputdir = "./"
	}
	prefix := viper.GetString("general.fileprefix")
	if prefix == "" {
		prefix = name
	}
	return keplerian.ExportConfig{
		Filename:  prefix,
		AsCSV:     viper.GetBool("export.csv"),
		WithECEF:  viper.GetBool("export.ecef"),
		Timestamp: viper.GetBool("export.timestamp"),
		OutputDir: outputdir,
	}
}

// confReadJDOrTime reads a time either as a Julian date float or as a
// datetime string.
func confReadJDOrTime(key string) (dt time.Time) {
	jd := viper.GetFloat64(key)
	if jd == 0 {
		var perr error
		dt, perr = time.Parse(dateTimeFormat, viper.GetString(key))
		if perr != nil {
			log.Fatalf("could not understand `%s`: %s", key, perr)
		}
	} else {
		dt = julian.JDToTime(jd)
	}
	return
}
