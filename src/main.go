package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"sparselife/src/life"
	"sparselife/src/view"
)

const bannerWidth = 50

//scenario is one self-contained demonstration: a seed set, how many
//generations to advance, and what to look at
type scenario struct {
	name     string
	descr    string
	cells    []life.Coordinate
	advances int
}

//the classic single-cell scenarios: each one watches what happens to
//the origin between generations
var scenarios = []scenario{
	{
		"SCENARIO_0",
		"an empty game stays empty - no spontaneous birth from nothing",
		nil,
		1,
	},
	{
		"SCENARIO_1",
		"(0,0) has one live neighbour and dies of underpopulation",
		[]life.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}},
		1,
	},
	{
		"SCENARIO_2",
		"(0,0) has four live neighbours and dies of overcrowding",
		[]life.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}},
		1,
	},
	{
		"SCENARIO_3",
		"(0,0) has two live neighbours and survives",
		[]life.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}},
		1,
	},
	{
		"SCENARIO_4",
		"(0,0) is dead with three live neighbours and is born",
		[]life.Coordinate{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}},
		1,
	},
	{
		"SCENARIO_6",
		"the blinker: flips between horizontal and vertical every generation",
		[]life.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}},
		2,
	},
}

type EnvOptions struct {
	interactive  bool
	randomData   bool
	demo         bool
	template     string
	templateFile string
	advanceTo    int
}

func main() {
	eo, ro := initOptions()

	templates := life.BuiltinTemplates()
	if eo.templateFile != "" {
		extra, err := life.LoadTemplates(eo.templateFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		for name, t := range extra {
			templates[name] = t
		}
	}

	if eo.demo {
		runScenarios()
		return
	}

	tmpl, ok := templates[eo.template]
	if !ok {
		flaggy.ShowHelpAndExit("unknown template")
	}

	if eo.advanceTo > 0 {
		//synchronous mode: jump straight to the target generation
		engine := life.NewEngine(tmpl.Cells())
		engine.AdvanceTo(uint(eo.advanceTo))
		fmt.Printf("Game at generation %v:\n%v\n", engine.Generation(), engine)
		fmt.Printf("Live cells: %v\n", engine.LiveCellCount())
		return
	}

	var stateCh chan life.RunStatus
	if !eo.interactive {
		//the buffered channel to getting the runner status
		//the interactive UI never reads it, so it gets nil there
		stateCh = make(chan life.RunStatus, 10)
	}

	r := life.NewRunner(ro, stateCh)
	for _, t := range templates {
		r.AddTemplate(t)
	}

	if eo.randomData {
		r.SettleWithRandomData()
	} else {
		r.SettleTemplate(tmpl.Name)
	}

	if eo.interactive {
		v := view.NewViewTerminal()
		r.RegisterViewer(v)
		v.Start()
		r.Close()
		return
	}

	//the console viewer prints the progress and the final summary
	c := view.NewConsoleOut()
	r.RegisterViewer(c)
	c.Start()

	r.Run()
	for {
		st := <-stateCh
		if st.RunningMode == life.RunningStateFinished {
			break
		}
	}
	r.Close()
	close(stateCh)
}

//runScenarios renders every scenario transcript into its own buffer
//concurrently, then prints them in order
func runScenarios() {
	var eg errgroup.Group
	outputs := make([]*bytes.Buffer, len(scenarios))

	for i, sc := range scenarios {
		i, sc := i, sc //preserve per-iteration capture under go <1.22
		outputs[i] = &bytes.Buffer{}
		eg.Go(func() error {
			return transcript(outputs[i], sc)
		})
	}

	//scenarios have no failure path, Wait only joins the workers
	_ = eg.Wait()

	for i, sc := range scenarios {
		if i != 0 {
			fmt.Println()
		}
		fmt.Println(view.Centre(sc.name, bannerWidth))
		fmt.Printf("%s: %s\n", strings.ToLower(sc.name), sc.descr)
		fmt.Print(outputs[i].String())
	}
}

//transcript writes the generation-by-generation state of one scenario
func transcript(out *bytes.Buffer, sc scenario) error {
	engine := life.NewEngine(sc.cells)
	fmt.Fprintf(out, "Game at generation %v:\n%v\n", engine.Generation(), engine)
	for i := 0; i < sc.advances; i++ {
		engine.AdvanceOne()
		fmt.Fprintf(out, "Game at generation %v:\n%v\n", engine.Generation(), engine)
	}
	return nil
}

func initOptions() (eo *EnvOptions, ro *life.Options) {

	ro = &life.DefaultRunnerOptions
	eo = &EnvOptions{template: "testSample"}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&ro.ViewWidth, "x", "width", "Width of the viewport (and the random soup area)")
	flaggy.Int(&ro.ViewHeight, "y", "height", "Height of the viewport (and the random soup area)")
	flaggy.Duration(&ro.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&ro.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Bool(&eo.demo, "d", "demo", "Print the classic scenario transcripts and exit")
	flaggy.String(&eo.template, "t", "template", "Seed template name")
	flaggy.String(&eo.templateFile, "f", "templateFile", "JSON file with extra seed templates")
	flaggy.Int(&eo.advanceTo, "g", "generation", "Advance straight to this generation and print the live set")

	flaggy.Parse()

	return
}
