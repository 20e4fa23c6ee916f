package life

import (
	"testing"
	"time"
)

func newTestOptions() *Options {
	o := DefaultRunnerOptions
	o.Interval = 0
	o.MaxSteps = 4
	return &o
}

func TestRunnerStepFinishesOnStillLife(t *testing.T) {
	stateCh := make(chan RunStatus, 10)
	r := NewRunner(newTestOptions(), stateCh)
	r.SettleTemplate("block")

	r.Step()
	for {
		st := <-stateCh
		if st.RunningMode == RunningStateFinished {
			if st.Generation != 1 {
				t.Fatalf("generation = %v, want 1", st.Generation)
			}
			if st.LiveCells != 4 {
				t.Fatalf("live cells = %v, want 4", st.LiveCells)
			}
			break
		}
	}
	r.Close()
	close(stateCh)
}

func TestRunnerRunStopsAtMaxSteps(t *testing.T) {
	stateCh := make(chan RunStatus, 10)
	r := NewRunner(newTestOptions(), stateCh)
	r.SettleTemplate("blinker") //oscillates forever, only the step limit stops it

	r.Run()
	for {
		st := <-stateCh
		if st.RunningMode == RunningStateFinished {
			if st.Generation != 4 {
				t.Fatalf("generation = %v, want the step limit 4", st.Generation)
			}
			break
		}
	}
	r.Close()
	close(stateCh)
}

func TestRunnerSettleResetsGeneration(t *testing.T) {
	stateCh := make(chan RunStatus, 10)
	r := NewRunner(newTestOptions(), stateCh)
	r.SettleTemplate("block")

	r.Step()
	for st := range stateCh {
		if st.RunningMode == RunningStateFinished {
			break
		}
	}

	r.SettleTemplate("blinker")
	st := r.Status()
	if st.Generation != 0 {
		t.Fatalf("generation after reseeding = %v, want 0", st.Generation)
	}
	if st.LiveCells != 3 {
		t.Fatalf("live cells after reseeding = %v, want 3", st.LiveCells)
	}
	r.Close()
	close(stateCh)
}

func TestRunnerToggleCell(t *testing.T) {
	r := NewRunner(newTestOptions(), nil)

	r.ToggleCell(2, 3)
	if got := r.Engine().LiveCells(); !coordsEqual(got, []Coordinate{{2, 3}}) {
		t.Fatalf("live cells after toggle = %v, want [(2,3)]", got)
	}

	r.ToggleCell(2, 3)
	if n := r.Engine().LiveCellCount(); n != 0 {
		t.Fatalf("live cells after second toggle = %v, want 0", n)
	}
	r.Close()
}

func TestRunnerStepsWithoutStateChannel(t *testing.T) {
	o := DefaultRunnerOptions
	o.Interval = 0
	o.MaxSteps = 100
	r := NewRunner(&o, nil) //viewers that never read statuses pass nil
	r.SettleTemplate("blinker")

	for i := 0; i < 8; i++ {
		r.Step()
	}

	deadline := time.Now().Add(2 * time.Second)
	for r.Engine().Generation() < 8 {
		if time.Now().After(deadline) {
			t.Fatalf("runner froze: generation stuck at %v", r.Engine().Generation())
		}
		time.Sleep(time.Millisecond)
	}
	r.Close()
}

func TestRunnerCloseWhileRunning(t *testing.T) {
	o := DefaultRunnerOptions
	o.Interval = 0
	o.MaxSteps = 0 //unlimited, the blinker oscillates until Close
	r := NewRunner(&o, nil)
	r.SettleTemplate("blinker")

	r.Run()
	time.Sleep(20 * time.Millisecond)
	r.Close()
	//the running cycle must wind down without touching the now closed
	//control channel
	time.Sleep(20 * time.Millisecond)
}

func TestRunnerUnknownTemplateIsIgnored(t *testing.T) {
	r := NewRunner(newTestOptions(), nil)
	r.SettleTemplate("no-such-template")
	if n := r.Engine().LiveCellCount(); n != 0 {
		t.Fatalf("unknown template seeded %v cells", n)
	}
	r.Close()
	//give the main loop a moment to drain the close channel
	time.Sleep(10 * time.Millisecond)
}
