// Package engine - the side-by-side comparison harness.
//
// The harness owns one instance (cities, distance matrix, optional
// drift) and any number of engines. Fairness comes from sequencing:
// a tick first advances movement and rebuilds the matrix exactly once,
// then steps every engine against that same snapshot, so no engine ever
// sees fresher geometry than its peers within a tick.
//
// Engine RNG streams are derived from the run seed per engine slot, so
// adding or removing an engine never perturbs the streams of the others
// in a different slot order, and every run is reproducible from
// (cities, seed, movement seed) alone.
package engine

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/dyntsp/geom"
	"github.com/katalvlaran/dyntsp/tour"
)

// HarnessConfig parameterizes a comparison run.
type HarnessConfig struct {
	// GridWidth and GridHeight bound city movement; required when
	// Dynamic is set, ignored otherwise.
	GridWidth  float64
	GridHeight float64

	// Seed derives every engine's RNG stream.
	Seed int64

	// Generations is the shared tick budget for Run.
	Generations int

	// Dynamic enables drifting cities; MovementSeed drives the drift
	// independently of the engine streams.
	Dynamic      bool
	MovementSeed int64
}

// SysInfo captures the platform a report was produced on.
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// EngineReport is one engine's trajectory over a run.
type EngineReport struct {
	Name string

	// BestEver[g] and Current[g] are the best-ever and current-best
	// costs after generation g, both against the matrix live at that
	// tick.
	BestEver []float64
	Current  []float64

	Final   Result
	Elapsed float64 // seconds of engine compute, movement excluded
}

// Report is the outcome of Harness.Run.
type Report struct {
	Cities      int
	Generations int
	Dynamic     bool
	System      SysInfo
	Engines     []EngineReport
}

// Harness drives a set of engines over one shared instance.
// Not safe for concurrent use.
type Harness struct {
	cfg     HarnessConfig
	dm      *geom.DistMatrix
	drift   *geom.Drift
	engines []Engine
	reports []EngineReport
	ticks   int
}

// NewHarness builds the instance and initializes every engine with its
// own derived RNG stream. The cities slice is copied.
func NewHarness(cities []geom.City, engines []Engine, cfg HarnessConfig) (*Harness, error) {
	if len(engines) == 0 {
		return nil, fmt.Errorf("%w: no engines to compare", ErrBadConfig)
	}
	if cfg.Generations < 1 {
		return nil, fmt.Errorf("%w: generation budget must be ≥ 1, got %d", ErrBadConfig, cfg.Generations)
	}

	dm, err := geom.NewDistMatrix(cities)
	if err != nil {
		return nil, err
	}

	var drift *geom.Drift
	if cfg.Dynamic {
		drift, err = geom.NewDrift(cities, cfg.GridWidth, cfg.GridHeight, cfg.MovementSeed)
		if err != nil {
			return nil, err
		}
	}

	reports := make([]EngineReport, len(engines))
	for i, e := range engines {
		// Stream 0 is reserved for instance generation.
		if err = e.Init(dm, tour.DeriveRNG(cfg.Seed, uint64(i+1))); err != nil {
			return nil, fmt.Errorf("init %s: %w", e.Name(), err)
		}
		reports[i] = EngineReport{
			Name:     e.Name(),
			BestEver: make([]float64, 0, cfg.Generations),
			Current:  make([]float64, 0, cfg.Generations),
		}
	}

	return &Harness{
		cfg:     cfg,
		dm:      dm,
		drift:   drift,
		engines: engines,
		reports: reports,
	}, nil
}

// Tick runs one generation: movement and a single matrix rebuild first,
// then one Step per engine against the shared snapshot. Returns the
// per-engine step infos in engine order.
func (h *Harness) Tick() ([]StepInfo, error) {
	if h.drift != nil {
		h.drift.Advance()
		if err := h.dm.Rebuild(h.drift.Positions()); err != nil {
			return nil, err
		}
	}

	infos := make([]StepInfo, len(h.engines))
	for i, e := range h.engines {
		info, err := e.Step(h.dm)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", e.Name(), err)
		}
		infos[i] = info

		h.reports[i].BestEver = append(h.reports[i].BestEver, info.BestEverCost)
		h.reports[i].Current = append(h.reports[i].Current, info.CurrentBestCost)
		h.reports[i].Elapsed = info.Elapsed.Seconds()
	}
	h.ticks++

	return infos, nil
}

// Run drives the full generation budget and assembles the report.
func (h *Harness) Run() (*Report, error) {
	for h.ticks < h.cfg.Generations {
		if _, err := h.Tick(); err != nil {
			return nil, err
		}
	}

	return h.Report(), nil
}

// Report snapshots the run so far; callable mid-run after any Tick.
func (h *Harness) Report() *Report {
	r := &Report{
		Cities:      h.dm.N(),
		Generations: h.ticks,
		Dynamic:     h.cfg.Dynamic,
		System:      collectSysInfo(),
		Engines:     make([]EngineReport, len(h.reports)),
	}
	for i := range h.reports {
		er := h.reports[i]
		er.BestEver = append([]float64(nil), h.reports[i].BestEver...)
		er.Current = append([]float64(nil), h.reports[i].Current...)
		er.Final = h.engines[i].Best()
		r.Engines[i] = er
	}

	return r
}

// Positions returns the current city coordinates - the live drift state
// in dynamic mode, nil otherwise (static callers already hold the input
// slice).
func (h *Harness) Positions() []geom.City {
	if h.drift == nil {
		return nil
	}

	return h.drift.Positions()
}

// Matrix exposes the shared distance matrix, e.g. for scoring a
// reference tour against the live geometry.
func (h *Harness) Matrix() *geom.DistMatrix { return h.dm }

// collectSysInfo probes the host; probe failures degrade to empty
// fields rather than failing the run.
func collectSysInfo() SysInfo {
	var info SysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}
