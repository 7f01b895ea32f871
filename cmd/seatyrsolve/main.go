// Command seatyrsolve generates seating plans for a scenario described in
// a YAML file and prints the top-scoring plan's summary, optionally
// writing an SVG floor diagram.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatconfig"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatviz"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/solver"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/summary"
)

const version = "1.0.0"

var (
	scenarioPath = flag.String("scenario", "", "Path to a YAML scenario file (required)")
	configPath   = flag.String("config", "", "Path to a YAML solver options file (optional)")
	svgPath      = flag.String("svg", "", "Path to write an SVG floor diagram for the top plan (optional)")
	seedFlag     = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	versionF     = flag.Bool("version", false, "Print version and exit")
)

// scenario is the loose external shape of a seating problem, as read
// straight off a YAML file. Its fields mirror solver.Input one-for-one.
type scenario struct {
	Guests []struct {
		ID    string  `yaml:"id"`
		Name  string  `yaml:"name"`
		Count float64 `yaml:"count"`
	} `yaml:"guests"`
	Tables []struct {
		ID       string   `yaml:"id"`
		Name     string   `yaml:"name"`
		Capacity *float64 `yaml:"capacity"`
		Seats    *float64 `yaml:"seats"`
	} `yaml:"tables"`
	Constraints map[string]map[string]string `yaml:"constraints"`
	Adjacents   map[string][]string          `yaml:"adjacents"`
	Assignments map[string]string            `yaml:"assignments"`
}

func loadScenario(path string) (solver.Input, []seatmodel.Guest, []seatmodel.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return solver.Input{}, nil, nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return solver.Input{}, nil, nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	in := solver.Input{
		Constraints: sc.Constraints,
		Adjacents:   sc.Adjacents,
		Assignments: sc.Assignments,
	}

	var guests []seatmodel.Guest
	for _, g := range sc.Guests {
		in.Guests = append(in.Guests, seatmodel.GuestInput{ID: g.ID, Name: g.Name, Count: g.Count})
		count := int(g.Count)
		if count < 1 {
			count = 1
		}
		guests = append(guests, seatmodel.Guest{ID: g.ID, Name: g.Name, Count: count})
	}

	var tables []seatmodel.Table
	for _, t := range sc.Tables {
		in.Tables = append(in.Tables, seatmodel.TableInput{ID: t.ID, Name: t.Name, Capacity: t.Capacity, Seats: t.Seats})
		capacity := 0
		switch {
		case t.Capacity != nil:
			capacity = int(*t.Capacity)
		case t.Seats != nil:
			capacity = int(*t.Seats)
		}
		tables = append(tables, seatmodel.Table{ID: t.ID, Name: t.Name, Capacity: capacity})
	}

	return in, guests, tables, nil
}

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("seatyrsolve version %s\n", version)
		os.Exit(0)
	}

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario flag is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading scenario from %s\n", *scenarioPath)
	}
	in, guests, tables, err := loadScenario(*scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	opts := solver.DefaultOptions()
	if *configPath != "" {
		if *verbose {
			fmt.Printf("Loading solver options from %s\n", *configPath)
		}
		cfg, err := seatconfig.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		opts = cfg.ToOptions()
	}
	if *seedFlag != 0 {
		opts.Seed = uint32(*seedFlag)
	}

	if *verbose {
		fmt.Printf("Using seed: %d, target plans: %d, time budget: %dms\n", opts.Seed, opts.TargetPlans, opts.TimeBudgetMs)
	}

	start := time.Now()
	plans, issues := solver.GeneratePlans(in, opts)
	elapsed := time.Since(start)

	if len(issues) > 0 {
		fmt.Println("Validation issues:")
		for _, it := range issues {
			fmt.Printf("  [%s] %s\n", it.Kind, it.Message)
		}
	}
	if seatmodel.AnyFatal(issues) {
		return fmt.Errorf("generation aborted: fatal validation issues present")
	}

	if *verbose {
		fmt.Printf("Generated %d plan(s) in %v\n", len(plans), elapsed)
	}
	if len(plans) == 0 {
		fmt.Println("No plans generated.")
		return nil
	}

	top := plans[0]
	fmt.Println(summary.Summarize(top, guests, tables))

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			return fmt.Errorf("failed to create SVG file: %w", err)
		}
		defer f.Close()
		if err := seatviz.RenderSVG(f, top, guests, tables, seatviz.DefaultOptions()); err != nil {
			return fmt.Errorf("failed to render SVG: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote SVG floor diagram to %s\n", *svgPath)
		}
	}

	return nil
}
