// Command dyntsp runs the three tour-optimization engines side by side
// on one instance, static or drifting, and prints a comparison report.
//
// Examples:
//
//	dyntsp --cities 50 --seed 7
//	dyntsp --fixed --generations 500
//	dyntsp --cities 30 --dynamic --movement-seed 3
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/katalvlaran/dyntsp/engine"
	"github.com/katalvlaran/dyntsp/geom"
)

// progressEvery is the tick interval between progress lines.
const progressEvery = 100

func main() {
	app := cli.NewApp()
	app.Name = "dyntsp"
	app.Usage = "compare SGA, HGA-ACO and PSO tour optimizers on one instance"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "cities, n", Value: 25, Usage: "number of random cities"},
		cli.BoolFlag{Name: "fixed", Usage: "use the built-in 10-city instance instead of random cities"},
		cli.Float64Flag{Name: "width", Value: 500, Usage: "grid width"},
		cli.Float64Flag{Name: "height", Value: 500, Usage: "grid height"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "seed for instance generation and engine streams"},
		cli.IntFlag{Name: "generations", Usage: "generation budget; 0 picks the preset for the instance size"},
		cli.BoolFlag{Name: "dynamic", Usage: "let cities drift between generations"},
		cli.Int64Flag{Name: "movement-seed", Value: 1, Usage: "seed for the drift trajectories"},
		cli.StringFlag{Name: "engines", Value: "sga,hga,pso", Usage: "comma-separated subset of sga,hga,pso"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	var (
		cities []geom.City
		err    error
	)
	if c.Bool("fixed") {
		cities = geom.Fixed10()
	} else {
		cities, err = geom.Generate(c.Int("cities"), c.Float64("width"), c.Float64("height"), c.Int64("seed"))
		if err != nil {
			return err
		}
	}

	preset := engine.PresetFor(len(cities))
	gens := c.Int("generations")
	if gens <= 0 {
		gens = preset.Generations
	}

	engines, err := selectEngines(c.String("engines"), preset)
	if err != nil {
		return err
	}

	h, err := engine.NewHarness(cities, engines, engine.HarnessConfig{
		GridWidth:    c.Float64("width"),
		GridHeight:   c.Float64("height"),
		Seed:         c.Int64("seed"),
		Generations:  gens,
		Dynamic:      c.Bool("dynamic"),
		MovementSeed: c.Int64("movement-seed"),
	})
	if err != nil {
		return err
	}

	mode := "static"
	if c.Bool("dynamic") {
		mode = "dynamic"
	}
	log.Printf("dyntsp: %d cities, %s, %d generations, %d engine(s)", len(cities), mode, gens, len(engines))

	for g := 0; g < gens; g++ {
		infos, err := h.Tick()
		if err != nil {
			return err
		}
		if (g+1)%progressEvery == 0 || g == gens-1 {
			parts := make([]string, len(infos))
			for i, info := range infos {
				parts[i] = fmt.Sprintf("%s best=%.2f cur=%.2f", info.Engine, info.BestEverCost, info.CurrentBestCost)
			}
			log.Printf("gen %d/%d  %s", g+1, gens, strings.Join(parts, "  "))
		}
	}

	writeReport(os.Stdout, h.Report())

	return nil
}

// selectEngines builds the requested engines with the preset's
// configurations, preserving the sga,hga,pso display order.
func selectEngines(spec string, preset engine.Preset) ([]engine.Engine, error) {
	want := map[string]bool{}
	for _, name := range strings.Split(spec, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		switch name {
		case "sga", "hga", "pso":
			want[name] = true
		default:
			return nil, fmt.Errorf("unknown engine %q (expected sga, hga or pso)", name)
		}
	}

	var engines []engine.Engine
	if want["sga"] {
		e, err := engine.NewSGA(preset.SGA)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}
	if want["hga"] {
		e, err := engine.NewHGAACO(preset.HGA)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}
	if want["pso"] {
		e, err := engine.NewPSO(preset.PSO)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}
	if len(engines) == 0 {
		return nil, fmt.Errorf("no engines selected from %q", spec)
	}

	return engines, nil
}

func writeReport(w io.Writer, rep *engine.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Instance: %d cities, %d generations", rep.Cities, rep.Generations)
	if rep.Dynamic {
		fmt.Fprint(w, ", dynamic")
	}
	fmt.Fprintln(w)
	if rep.System.Platform != "" || rep.System.CPU != "" {
		fmt.Fprintf(w, "System:   %s, %s, %s\n", rep.System.Platform, rep.System.CPU, rep.System.RAM)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-10s %14s %12s %10s\n", "Engine", "Best cost", "Elapsed (s)", "Gens")
	for _, er := range rep.Engines {
		fmt.Fprintf(w, "%-10s %14.2f %12.3f %10d\n", er.Name, er.Final.Cost, er.Elapsed, len(er.BestEver))
	}

	fmt.Fprintln(w)
	for _, er := range rep.Engines {
		fmt.Fprintf(w, "%s tour: %v\n", er.Name, er.Final.Tour)
	}
}
