package keplerian

import (
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ExportConfig configures the exporting of generated ephemerides.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	WithECEF  bool   // append earth-fixed columns to each record
	Timestamp bool   // stamp the file name with the creation time
	OutputDir string // empty means the configured default
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(conf ExportConfig, firstDT time.Time) *os.File {
	outputDir := conf.OutputDir
	if outputDir == "" {
		outputDir = kepConfig().outputDir
	}
	var filename string
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/ephemeris-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", outputDir, conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/ephemeris-%s.csv", outputDir, conf.Filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <time> <jd> <label> <plane> <slot> and positions
#   Positions in meters
#   Simulation time start (UTC): %s
time,jd,label,plane,slot,x_eci,y_eci,z_eci`, time.Now().UTC(), firstDT.UTC()))
	if conf.WithECEF {
		f.WriteString(",x_ecef,y_ecef,z_ecef")
	}
	return f
}

// StreamStates streams the states of the channel to the configured outputs
// until the channel is closed. Run it in its own goroutine.
func StreamStates(conf ExportConfig, stateChan <-chan State) {
	var f *os.File
	var lastDT time.Time
	for state := range stateChan {
		if conf.AsCSV {
			if f == nil {
				f = createCSVFile(conf, state.DT)
			}
			asTxt := fmt.Sprintf("%s,%f,%s,%d,%d,%.3f,%.3f,%.3f", state.DT.UTC().Format("2006-01-02 15:04:05"), julian.TimeToJD(state.DT), state.Sat.Label, state.Sat.Plane, state.Sat.Slot, state.ECI.X, state.ECI.Y, state.ECI.Z)
			if conf.WithECEF {
				asTxt += fmt.Sprintf(",%.3f,%.3f,%.3f", state.ECEF.X, state.ECEF.Y, state.ECEF.Z)
			}
			if _, err := f.WriteString("\n" + asTxt); err != nil {
				panic(err)
			}
		}
		lastDT = state.DT
	}
	if f != nil {
		f.WriteString(fmt.Sprintf("\n# Simulation time end (UTC): %s\n", lastDT.UTC()))
		f.Close()
	}
}
