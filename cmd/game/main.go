package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	persistlog "gocraft/internal/persistence/log"
	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/player"
	"gocraft/internal/sim/terrain"
	"gocraft/internal/sim/tuning"
	"gocraft/internal/sim/world"
)

func main() {
	var (
		seed       = flag.Int64("seed", 1337, "world seed")
		configDir  = flag.String("configs", "./configs", "config directory")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		ticks      = flag.Int("ticks", 0, "stop after this many ticks (0 = run until interrupted)")
		walk       = flag.Bool("walk", true, "hold forward so the scripted observer crosses chunk borders")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[game] ", log.LstdFlags|log.Lmicroseconds)

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}
	logger.Printf("catalogs loaded: blocks=%d digest=%s", len(cats.Blocks.Names), cats.Blocks.Digest[:12])

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("tuning not found (%s); using defaults", tp)
			tune = tuning.Default()
		} else {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	_ = os.MkdirAll(*dataDir, 0o755)
	events := persistlog.NewChunkEventLog(*dataDir)
	defer events.Close()

	gen, err := terrain.NewGenerator(cats, *seed)
	if err != nil {
		logger.Fatalf("terrain generator: %v", err)
	}
	pipe := world.NewChannelPipe(gen.GenChunk)

	w := world.New(cats, world.Config{
		Seed:    *seed,
		RadiusY: tune.LoadRadiusY,
		Dwell:   time.Duration(tune.ChunkDwellSeconds * float64(time.Second)),
		Pipe:    pipe,
		Events:  events,
	})
	defer w.Close()

	spawn := mgl32.Vec3{8, 20, 8}
	p, err := player.New(w, cats, tune, spawn)
	if err != nil {
		logger.Fatalf("player: %v", err)
	}
	logger.Printf("world up: seed=%d spawn=%v tick_rate=%dhz", *seed, spawn, tune.TickRateHz)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	dt := float32(1) / float32(tune.TickRateHz)
	ticker := time.NewTicker(time.Second / time.Duration(tune.TickRateHz))
	defer ticker.Stop()

	inputs := player.Inputs{}
	if *walk {
		inputs[player.MoveForward] = true
	}

	tick := 0
	for {
		select {
		case s := <-sig:
			logger.Printf("signal %v, shutting down", s)
			return
		case <-ticker.C:
		}

		p.Move(inputs, dt)
		p.BreakAndPlace(inputs, dt)
		p.SwitchBlock(inputs)
		w.LoadChunks(p.Position, tune.LoadRadius)

		// Walking off an edge must start a fall even though no collision
		// happened this tick.
		if w.Block(p.Position.Sub(mgl32.Vec3{0, 1, 0})) == 0 {
			p.OnGround = false
		}

		if err := w.Err(); err != nil {
			logger.Fatalf("chunk generator died: %v", err)
		}

		tick++
		if tick%(tune.TickRateHz*10) == 0 {
			logger.Printf("tick=%d pos=%v resident=%d pending=%d",
				tick, p.Position, w.Resident(), w.Pending())
			_ = events.Write(map[string]any{
				"type":     "tick_status",
				"tick":     tick,
				"resident": w.Resident(),
				"pending":  w.Pending(),
			})
		}
		if *ticks > 0 && tick >= *ticks {
			logger.Printf("done: ticks=%d resident=%d", tick, w.Resident())
			return
		}
	}
}
