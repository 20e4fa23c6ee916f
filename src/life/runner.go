package life

import (
	"sync"
	"time"
)

//The runner running state at the concrete moment
type RunningState int

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

//Options represents the Runner's configurable options
//ViewWidth and ViewHeight only bound the viewport and the random soup,
//the plane itself is unbounded
type Options struct {
	ViewWidth  int
	ViewHeight int
	Interval   time.Duration
	MaxSteps   int
	SoupCells  int
}

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefViewWidth          = 40
	DefViewHeight         = 15
	DefSoupCells          = 120
)

var DefaultRunnerOptions = Options{
	ViewWidth:  DefViewWidth,
	ViewHeight: DefViewHeight,
	Interval:   DefSimulationInterval,
	MaxSteps:   DefMaxSteps,
	SoupCells:  DefSoupCells,
}

//RunStatus represents the status of the runner at a concrete moment
type RunStatus struct {
	Status
	RunningMode RunningState
}

//Viewer is the interface to any viewer - the object who can display
//simulation data or control the runner
type Viewer interface {
	Refresh()
	Register(r *Runner)
	Start()
}

//Runner drives an Engine asynchronously: commands arrive over a control
//channel and execute one at a time in the main loop, status updates go
//out over stateCh. The Engine itself accepts cells at construction only,
//so every reseeding replaces the owned engine with a fresh one.
type Runner struct {
	options Options
	state   struct {
		mode   RunningState
		engine *Engine
		closed bool
		sync.Mutex
	}
	stateCh   chan RunStatus
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
}

//NewRunner creates the Runner instance with an empty engine and the
//builtin templates preloaded
func NewRunner(o *Options, stateCh chan RunStatus) *Runner {
	if o == nil {
		o = &DefaultRunnerOptions
	}
	r := Runner{
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: BuiltinTemplates(),
	}
	r.state.engine = NewEngine(nil)
	go r.mainLoop()
	return &r
}

//AddTemplate adds the seeding template to the internal storage
//the runner can be seeded with this template by call SettleTemplate
func (r *Runner) AddTemplate(tmpl Template) {
	r.templates[tmpl.Name] = tmpl
}

//SettleTemplate reseeds the engine with the named template
//unknown names are ignored
func (r *Runner) SettleTemplate(name string) {
	tmpl, ok := r.templates[name]
	if !ok {
		return
	}
	r.Settle(tmpl.Cells())
}

//SettleWithRandomData reseeds the engine with a random soup inside the
//viewport rectangle
func (r *Runner) SettleWithRandomData() {
	r.Settle(RandomSoup(r.options.ViewWidth, r.options.ViewHeight, r.options.SoupCells))
}

//Settle replaces the owned engine with a fresh one at generation 0
//seeded with the given cells
func (r *Runner) Settle(cells []Coordinate) {
	r.state.Lock()
	r.state.engine = NewEngine(cells)
	r.state.mode = RunningStateManual
	r.state.Unlock()
	r.refreshView()
}

//ToggleCell inverses the cell state at point x, y
//the engine is rebuilt from the edited set, so the generation counter
//restarts at 0 - toggling is a seeding operation, not a simulation one
func (r *Runner) ToggleCell(x int, y int) {
	r.state.Lock()
	c := Coordinate{X: x, Y: y}
	set := NewCellSet(r.state.engine.LiveCells()...)
	if set.Contains(c) {
		set = set.Diff(NewCellSet(c))
	} else {
		set.Insert(c)
	}
	r.state.engine = NewEngine(set.Cells())
	r.state.Unlock()
	r.refreshView()
}

//Engine returns the currently owned engine for reading
func (r *Runner) Engine() *Engine {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.engine
}

//RegisterViewer registers the viewer - the runner will call the viewer
//when the state is changed
func (r *Runner) RegisterViewer(v Viewer) {
	r.views = append(r.views, v)
	v.Register(r)
}

//StateCh returns the channel with the runner's status updates
func (r *Runner) StateCh() chan RunStatus {
	return r.stateCh
}

//Status returns current runner status represented by RunStatus struct
func (r *Runner) Status() RunStatus {
	r.state.Lock()
	defer r.state.Unlock()
	return RunStatus{Status: r.state.engine.Status(), RunningMode: r.state.mode}
}

//Options returns current runner configuration represented by Options struct
func (r *Runner) Options() Options {
	return r.options
}

//Run starts the simulation, returns immediately
func (r *Runner) Run() {
	r.controlCh <- r.run
}

//Stop stops the simulation, returns immediately
//the RunStatus struct will be written to the stateCh on finish
func (r *Runner) Stop() {
	r.controlCh <- r.stop
}

//Step does one simulation step, returns immediately
//the RunStatus struct will be written to the stateCh on start and on finish
func (r *Runner) Step() {
	r.controlCh <- func() { r.step() }
}

//Clear kills all cells and resets the generation counter, returns immediately
func (r *Runner) Clear() {
	r.controlCh <- func() {
		r.Settle(nil)
		r.switchRunningState(RunningStateManual)
	}
}

//Close stops the running cycle and the main loop, closes the control
//channels, returns immediately
func (r *Runner) Close() {
	r.state.Lock()
	r.state.closed = true
	r.state.Unlock()
	r.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (r *Runner) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-r.controlCh:
			cmd()
		case c = <-r.closeCh:
		}
	}
	close(r.closeCh)
	close(r.controlCh)
}

//switchRunningState switches the state of the runner to RunningState
//also writes the new state to the stateCh to signal upper control software
func (r *Runner) switchRunningState(to RunningState) {
	r.state.Lock()
	r.state.mode = to
	st := RunStatus{Status: r.state.engine.Status(), RunningMode: to}
	r.state.Unlock()
	if r.stateCh != nil {
		r.stateCh <- st
	}
}

//run starts the simulation cycle
//the cycle steps the engine directly (every step is internally
//synchronized) so it never touches the control channel after Close,
//and stops on Stop() or Close() calling or when the boundary conditions
//are reached: step limit, extinction, or a fully static set
func (r *Runner) run() {
	go func() {
		r.switchRunningState(RunningStateRun)
		for {
			r.state.Lock()
			mode := r.state.mode
			closed := r.state.closed
			r.state.Unlock()
			if mode != RunningStateRun || closed {
				break
			}
			r.step()
			if r.options.Interval > 0 {
				time.Sleep(r.options.Interval)
			}
		}
	}()
}

//stop stops the running cycle
func (r *Runner) stop() {
	r.state.Lock()
	running := r.state.mode == RunningStateRun
	r.state.Unlock()
	if running {
		r.switchRunningState(RunningStateManual)
	}
}

//step does one generation advance on the owned engine
//switches to finished when the step limit is reached, the population
//dies out, or the set did not change (still life)
func (r *Runner) step() {
	r.state.Lock()
	e := r.state.engine
	rm := r.state.mode
	r.state.Unlock()

	before := NewCellSet(e.LiveCells()...)
	r.switchRunningState(RunningStateStep)
	e.AdvanceOne()
	after := NewCellSet(e.LiveCells()...)

	next := rm
	if after.Len() == 0 || before.Equal(after) {
		next = RunningStateFinished
	}
	if r.options.MaxSteps != 0 && e.Generation() >= uint(r.options.MaxSteps) {
		next = RunningStateFinished
	}

	r.state.Lock()
	r.state.mode = next
	st := RunStatus{Status: e.Status(), RunningMode: next}
	r.state.Unlock()

	//views refresh before the status goes out, so a caller that exits
	//on a Finished status never outruns the final Refresh
	r.refreshView()
	if r.stateCh != nil {
		r.stateCh <- st
	}
}

//refreshView calls Refresh event for all registered views
func (r *Runner) refreshView() {
	for _, v := range r.views {
		v.Refresh()
	}
}
