package loop

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// recorder logs callback order and stops after a fixed number of frames.
type recorder struct {
	calls   []string
	stopAt  int
	handled int
	phase   core.Phase
}

func (r *recorder) HandleInput(in core.MultiInputFrame) bool {
	r.handled++
	r.calls = append(r.calls, "input")
	if in.Player1().Has(core.ActionOne) {
		r.phase = core.PhasePlaying
	}
	return r.stopAt == 0 || r.handled < r.stopAt
}

func (r *recorder) Update() { r.calls = append(r.calls, "update") }

func (r *recorder) Draw(dst *core.Screen) {
	r.calls = append(r.calls, "draw")
	dst.DrawTextColored(0, 0, "frame", core.ColorDefault)
}

func (r *recorder) State() core.GameState { return core.GameState{Phase: r.phase} }

type scriptedSource struct {
	frames []core.MultiInputFrame
}

func (s *scriptedSource) Poll() core.MultiInputFrame {
	if len(s.frames) == 0 {
		return core.NewMultiInputFrame()
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

type bufferPresenter struct {
	screen   *core.Screen
	presents int
}

func (p *bufferPresenter) Screen() *core.Screen { return p.screen }
func (p *bufferPresenter) Present()             { p.presents++ }

type countingGovernor struct {
	waits  int
	cancel context.CancelFunc
	after  int
}

func (g *countingGovernor) Wait(ctx context.Context) error {
	g.waits++
	if g.cancel != nil && g.waits == g.after {
		g.cancel()
	}
	return nil
}

func press(a core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	m.Update(core.Player1, func(f *core.InputFrame) { f.Set(a) })
	return m
}

func TestRunCallbackOrder(t *testing.T) {
	g := &recorder{stopAt: 3}
	out := &bufferPresenter{screen: core.NewScreen(10, 2)}
	gov := &countingGovernor{}

	if err := NewDriver(g, nil).Run(context.Background(), &scriptedSource{}, out, gov); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "input update draw input update draw input"
	if got := strings.Join(g.calls, " "); got != want {
		t.Errorf("calls = %q, expected %q", got, want)
	}
	if out.presents != 2 || gov.waits != 2 {
		t.Errorf("presents = %d, waits = %d, expected 2 each", out.presents, gov.waits)
	}
	if !out.screen.Contains("frame") {
		t.Error("presented screen should hold the drawn frame")
	}
}

func TestWindowCloseSkipsGame(t *testing.T) {
	g := &recorder{}
	d := NewDriver(g, nil)

	if d.Step(press(core.ActionQuit)) {
		t.Error("Step should stop on window close")
	}
	if len(g.calls) != 0 {
		t.Errorf("game should not be consulted on close, calls = %v", g.calls)
	}
	if d.Running() {
		t.Error("driver should no longer be running")
	}
	if d.Step(core.NewMultiInputFrame()) {
		t.Error("stopped driver should not step")
	}
}

func TestContextCancelFinishesFrame(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &recorder{}
	out := &bufferPresenter{screen: core.NewScreen(10, 2)}
	gov := &countingGovernor{cancel: cancel, after: 2}

	if err := NewDriver(g, nil).Run(ctx, &scriptedSource{}, out, gov); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.presents != 2 {
		t.Errorf("presents = %d, expected 2 complete frames", out.presents)
	}
	if last := g.calls[len(g.calls)-1]; last != "draw" {
		t.Errorf("last call = %q, expected in-flight frame to complete", last)
	}
}

func TestStepTracksPhase(t *testing.T) {
	g := &recorder{}
	d := NewDriver(g, nil)

	d.Step(press(core.ActionOne))
	if d.phase != core.PhasePlaying {
		t.Errorf("driver phase = %v, expected playing", d.phase)
	}
	if d.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", d.Frames())
	}
}

func TestInterval(t *testing.T) {
	if got := Interval(3).Milliseconds(); got != 333 {
		t.Errorf("Interval(3) = %dms, expected 333", got)
	}
	if Interval(0) != Interval(60) {
		t.Error("Interval(0) should default to 60 FPS")
	}
}
