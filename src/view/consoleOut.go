package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"sparselife/src/life"
)

//Centre centres a string inside a field of the given length, padding
//both sides with asterisks. Strings longer than the field come back
//unchanged.
func Centre(in string, length int) string {
	if length <= len(in) {
		return in
	}
	pad := strings.Repeat("*", (length-len(in))/2)
	return pad + in + pad
}

//ConsoleOut is the non-interactive viewer: it prints the configuration
//on registration, progress while running and a summary with the final
//live set when the runner finishes
type ConsoleOut struct {
	r         *life.Runner
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Register(r *life.Runner) {
	c.r = r
	o := c.r.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Viewport: %v x %v\n", o.ViewWidth, o.ViewHeight)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max iterations: %v steps\n", o.MaxSteps)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

func (c *ConsoleOut) Refresh() {
	st := c.r.Status()
	if st.RunningMode == life.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\n" + aurora.Colorize("Finished:", aurora.GreenFg).String())
		fmt.Printf("  Last generation: %v\n", st.Generation)
		fmt.Printf("  Total time: %v\n", totalTime)
		fmt.Printf("  Live cells: %v\n", st.LiveCells)
		fmt.Printf("  Final set: %v\n", c.r.Engine())
	} else if st.RunningMode == life.RunningStateRun {
		if st.Generation%10 == 0 {
			fmt.Printf("  Generations done: %v\n", st.Generation)
		}
	}
}
