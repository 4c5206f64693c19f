package engine

import (
	"testing"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/steer/vmath"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	dts      []time.Duration
}

func (s *recordingSystem) Update(dt time.Duration) {
	*s.log = append(*s.log, s.name)
	s.dts = append(s.dts, dt)
}

func (s *recordingSystem) Priority() int { return s.priority }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	late := &recordingSystem{name: "late", priority: 20, log: &log}
	early := &recordingSystem{name: "early", priority: 5, log: &log}
	tieA := &recordingSystem{name: "tieA", priority: 10, log: &log}
	tieB := &recordingSystem{name: "tieB", priority: 10, log: &log}

	w.AddSystem(late)
	w.AddSystem(tieA)
	w.AddSystem(early)
	w.AddSystem(tieB)

	w.Update(16 * time.Millisecond)

	want := []string{"early", "tieA", "tieB", "late"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, log[i], want[i])
		}
	}
	if early.dts[0] != 16*time.Millisecond {
		t.Errorf("dt = %v", early.dts[0])
	}
	if len(w.Systems()) != 4 {
		t.Errorf("Systems len = %d", len(w.Systems()))
	}
}

func TestSpawnPlayer(t *testing.T) {
	w := NewWorld()

	e, err := w.SpawnPlayer(PlayerSpec{
		Name:        "p1",
		Start:       vmath.Vec3F{X: 3, Y: -1},
		Glyph:       '@',
		Enabled:     true,
		SpeedFactor: 2.5,
	})
	if err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}

	tr := w.Transform(e)
	if tr == nil {
		t.Fatal("missing transform")
	}
	if tr.Position != (vmath.Vec3F{X: 3, Y: -1}) {
		t.Errorf("position = %+v", tr.Position)
	}

	ctrl := w.Controllable(e)
	if ctrl == nil {
		t.Fatal("missing controllable")
	}
	if !ctrl.Enabled || ctrl.SpeedFactor != 2.5 || !ctrl.Initialized() {
		t.Errorf("controllable = %+v", ctrl)
	}

	// Pointers alias component storage
	ctrl.SetEnabled(false)
	if w.Controllable(e).Enabled {
		t.Error("SetEnabled did not reach stored component")
	}
}

func TestLookupsOnDeadEntity(t *testing.T) {
	w := NewWorld()
	e, err := w.SpawnPlayer(PlayerSpec{Name: "gone", Glyph: '@', SpeedFactor: 1})
	if err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	w.ECS.RemoveEntity(e)

	if w.Transform(e) != nil || w.Controllable(e) != nil {
		t.Error("expected nil components for removed entity")
	}

	var zero ecs.Entity
	if w.Transform(zero) != nil {
		t.Error("expected nil for zero entity")
	}
}

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameClock(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	fc := NewFrameClockWithTime(50*time.Millisecond, clk.now)

	if dt := fc.Tick(); dt != 0 {
		t.Errorf("first tick = %v, want 0", dt)
	}

	clk.advance(16 * time.Millisecond)
	if dt := fc.Tick(); dt != 16*time.Millisecond {
		t.Errorf("tick = %v, want 16ms", dt)
	}

	clk.advance(time.Second)
	if dt := fc.Tick(); dt != 50*time.Millisecond {
		t.Errorf("stalled tick = %v, want clamp 50ms", dt)
	}

	if !fc.Toggle() || !fc.Paused() {
		t.Fatal("expected paused")
	}
	clk.advance(30 * time.Millisecond)
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("paused tick = %v, want 0", dt)
	}

	clk.advance(40 * time.Millisecond)
	if fc.Toggle() {
		t.Fatal("expected resumed")
	}
	clk.advance(10 * time.Millisecond)
	if dt := fc.Tick(); dt != 10*time.Millisecond {
		t.Errorf("tick after resume = %v, want 10ms", dt)
	}
}

func TestFrameClockDefaultMax(t *testing.T) {
	fc := NewFrameClock(0)
	if fc.maxDelta != DefaultMaxFrameDelta {
		t.Errorf("maxDelta = %v", fc.maxDelta)
	}
}
