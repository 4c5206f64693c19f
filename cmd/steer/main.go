package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/lixenwraith/steer/audio"
	"github.com/lixenwraith/steer/config"
	"github.com/lixenwraith/steer/engine"
	"github.com/lixenwraith/steer/input"
	"github.com/lixenwraith/steer/logging"
	"github.com/lixenwraith/steer/parameter"
	"github.com/lixenwraith/steer/render"
	"github.com/lixenwraith/steer/system"
	"github.com/lixenwraith/steer/vmath"
)

var (
	configFlag   = flag.String("config", "", "Path to a .toml or .yaml config file (built-in defaults when empty)")
	speedFlag    = flag.Float64("speed", math.NaN(), "Override control.speed_factor")
	disabledFlag = flag.Bool("disabled", false, "Start with control disabled")
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "steer: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if !math.IsNaN(*speedFlag) {
		cfg.Control.SpeedFactor = *speedFlag
	}
	if *disabledFlag {
		cfg.Control.Controllable = false
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("session", uuid.NewString()))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableFocus()
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			_ = logger.Sync()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTEER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	world := engine.NewWorld()
	player, err := world.SpawnPlayer(engine.PlayerSpec{
		Name:        cfg.Entity.Name,
		Start:       vmath.Vec3F{X: cfg.Entity.Start[0], Y: cfg.Entity.Start[1], Z: cfg.Entity.Start[2]},
		Glyph:       cfg.GlyphRune(),
		Style:       tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Enabled:     cfg.Control.Controllable,
		SpeedFactor: cfg.Control.SpeedFactor,
	})
	if err != nil {
		return err
	}

	keys := input.NewHeldTracker(cfg.Input.InitialHold, cfg.Input.HoldTimeout)
	movement := system.NewMovementSystem(world, keys, logger)
	world.AddSystem(movement)

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, parameter.StepToneHz, parameter.StepToneDuration)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", zap.Error(err))
		} else {
			defer sm.Cleanup()
			movement.SetStepCue(sm)
		}
	}

	g := &game{
		cfg:      cfg,
		screen:   screen,
		world:    world,
		player:   player,
		keys:     keys,
		movement: movement,
		renderer: render.NewScreenRenderer(screen, world),
		clock:    engine.NewFrameClock(cfg.Loop.MaxDelta),
		logger:   logger,
	}

	logger.Info("session started",
		zap.Bool("controllable", cfg.Control.Controllable),
		zap.Float64("speed_factor", cfg.Control.SpeedFactor),
		zap.Duration("frame_interval", cfg.Loop.FrameInterval),
	)
	g.run()

	pos := world.Transform(player).Position
	logger.Info("session ended", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	return nil
}

type game struct {
	cfg      *config.Config
	screen   tcell.Screen
	world    *engine.World
	player   ecs.Entity
	keys     *input.HeldTracker
	movement *system.MovementSystem
	renderer *render.ScreenRenderer
	clock    *engine.FrameClock
	logger   *zap.Logger
}

func (g *game) run() {
	ticker := time.NewTicker(g.cfg.Loop.FrameInterval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case sig := <-sigChan:
			g.logger.Info("signal received", zap.String("signal", sig.String()))
			return

		case <-ticker.C:
			dt := g.clock.Tick()
			if !g.clock.Paused() {
				g.world.Update(dt)
			}
			g.draw()
		}
	}
}

// handleEvent applies one terminal event, returns false to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			g.toggleControl()
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case '+', '=':
				g.adjustSpeed(parameter.PlayerSpeedStep)
				return true
			case '-', '_':
				g.adjustSpeed(-parameter.PlayerSpeedStep)
				return true
			case 'p', 'P':
				paused := g.clock.Toggle()
				g.keys.Clear()
				g.logger.Info("pause toggled", zap.Bool("paused", paused))
				return true
			}
		}
		if k, ok := input.KeyFromEvent(ev); ok {
			g.keys.Press(k)
		}

	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			g.keys.Clear()
		}
	}
	return true
}

func (g *game) toggleControl() {
	ctrl := g.world.Controllable(g.player)
	if ctrl == nil {
		return
	}
	ctrl.SetEnabled(!ctrl.Enabled)
	g.keys.Clear()
	g.logger.Info("control toggled", zap.Bool("controllable", ctrl.Enabled))
}

func (g *game) adjustSpeed(step float64) {
	ctrl := g.world.Controllable(g.player)
	if ctrl == nil {
		return
	}
	speed := math.Max(0, math.Min(parameter.PlayerSpeedMax, ctrl.SpeedFactor+step))
	ctrl.SetSpeedFactor(speed)
	g.logger.Info("speed changed", zap.Float64("speed_factor", speed))
}

func (g *game) draw() {
	status := render.Status{
		Name:   g.cfg.Entity.Name,
		Keys:   g.movement.LastSnapshot(),
		Paused: g.clock.Paused(),
	}
	if ctrl := g.world.Controllable(g.player); ctrl != nil {
		status.Enabled = ctrl.Enabled
		status.Speed = ctrl.SpeedFactor
	}
	if tr := g.world.Transform(g.player); tr != nil {
		status.Position = tr.Position
	}
	g.renderer.Draw(status)
}
