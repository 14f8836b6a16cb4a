package keplerian

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"golang.org/x/sync/errgroup"
)

// DefaultStep is the default sampling step of ephemeris generation.
const DefaultStep = 10 * time.Second

// State is one sampled data point of one satellite.
type State struct {
	DT   time.Time
	Sat  Satellite
	ECI  PositionECI
	ECEF PositionECEF
}

// Window is the sampling window of an ephemeris: [Start, End] walked
// inclusively in increments of Step.
type Window struct {
	Start, End time.Time
	Step       time.Duration
}

// Ephemeris samples a satellite set over a time window and streams the
// resulting states to the configured export. One Ephemeris drives a single
// generation; create a new one per run.
type Ephemeris struct {
	Name    string
	Sats    []Satellite
	Window  Window
	Workers int

	logger   kitlog.Logger
	histChan chan State
	wg       sync.WaitGroup
}

// NewEphemeris returns an ephemeris generator for the given satellites.
// A workers count of zero or less selects runtime.NumCPU().
func NewEphemeris(name string, sats []Satellite, window Window, workers int, conf ExportConfig) *Ephemeris {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "ephemeris", name)
	e := &Ephemeris{Name: name, Sats: sats, Window: window, Workers: workers, logger: klog}
	if !conf.IsUseless() {
		e.histChan = make(chan State, 1000) // a 1k entry buffer
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			StreamStates(conf, e.histChan)
		}()
	}
	return e
}

// SetLogger replaces the default stdout logger.
func (e *Ephemeris) SetLogger(l kitlog.Logger) {
	e.logger = l
}

// Sample computes the state of every satellite at the given time, preserving
// the satellite ordering in the returned slice. The sidereal angle is
// computed once and shared; the per-satellite propagation is fanned out over
// the worker count. On any error no states are returned.
func (e *Ephemeris) Sample(dt time.Time) ([]State, error) {
	states := make([]State, len(e.Sats))
	θgst := GMST(dt)
	var g errgroup.Group
	g.SetLimit(e.Workers)
	for j := range e.Sats {
		j := j
		g.Go(func() error {
			sat := e.Sats[j]
			eci, err := Propagate(sat.Elements, dt)
			if err != nil {
				return fmt.Errorf("%s: %w", sat.Label, err)
			}
			states[j] = State{DT: dt, Sat: sat, ECI: eci, ECEF: ECI2ECEF(eci, θgst)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

// Generate walks the window and streams every sampled state to the export.
// It blocks until the window is exhausted and all states are written, or
// until the first error or context cancellation.
func (e *Ephemeris) Generate(ctx context.Context) error {
	if e.Window.Step <= 0 {
		return e.abort(fmt.Errorf("ephemeris step %s is not positive", e.Window.Step))
	}
	if e.Window.End.Before(e.Window.Start) {
		return e.abort(fmt.Errorf("ephemeris window ends %s before it starts %s", e.Window.End, e.Window.Start))
	}
	e.logger.Log("level", "info", "status", "starting", "satellites", len(e.Sats), "start", e.Window.Start.UTC(), "end", e.Window.End.UTC(), "step", e.Window.Step, "workers", e.Workers)
	genStart := time.Now()
	steps := 0
	for dt := e.Window.Start; !dt.After(e.Window.End); dt = dt.Add(e.Window.Step) {
		if err := ctx.Err(); err != nil {
			return e.abort(err)
		}
		states, err := e.Sample(dt)
		if err != nil {
			return e.abort(err)
		}
		if e.histChan != nil {
			for _, st := range states {
				e.histChan <- st
			}
		}
		steps++
	}
	if e.histChan != nil {
		close(e.histChan)
	}
	e.wg.Wait() // Don't return until we're done writing all the files.
	e.logger.Log("level", "notice", "status", "finished", "steps", steps, "states", steps*len(e.Sats), "duration", time.Since(genStart).String())
	return nil
}

// abort closes the stream so the export goroutine flushes its footer, then
// returns the error unchanged.
func (e *Ephemeris) abort(err error) error {
	if e.histChan != nil {
		close(e.histChan)
		e.wg.Wait()
	}
	return err
}
