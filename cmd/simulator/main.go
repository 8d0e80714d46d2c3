// Command simulator runs a fake EIPA registry for local development. It
// serves the availability endpoint the poller consumes and flips a few
// charging points between available and occupied on every cycle.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	port         = flag.Int("port", 9090, "Port to serve the fake registry on")
	flipInterval = flag.Duration("interval", 10*time.Second, "How often point statuses change")
	flipCount    = flag.Int("flips", 3, "How many points change status per cycle")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
)

type pointState struct {
	PointID int64  `json:"point_id"`
	Status  string `json:"status"`
}

// The point IDs below mirror the seeded Łódź catalog so the poller's changes
// land on real stations.
var seedPointIDs = []int64{
	24501, 24502, 24503, 24504,
	31001, 31002, 31003,
	45202, 45203,
	52301, 52302, 52303, 52304,
	18901, 18902,
	67801, 67802, 67803, 67804, 67805, 67806, 67807, 67808,
	38901, 38902, 38903, 38904,
	56701, 56702,
	71201, 71202,
	22301, 22302, 22303,
	82301, 82302,
	64501, 64502, 64503,
}

type registry struct {
	mu     sync.RWMutex
	points []pointState
	rng    *rand.Rand
	log    *zap.Logger
}

func newRegistry(log *zap.Logger) *registry {
	r := &registry{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: log,
	}
	for _, id := range seedPointIDs {
		r.points = append(r.points, pointState{PointID: id, Status: "available"})
	}
	return r
}

func (r *registry) flip(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < count; i++ {
		idx := r.rng.Intn(len(r.points))
		p := &r.points[idx]
		if p.Status == "available" {
			p.Status = "occupied"
		} else {
			p.Status = "available"
		}
		r.log.Debug("flipped point",
			zap.Int64("point_id", p.PointID),
			zap.String("status", p.Status),
		)
	}
}

func (r *registry) snapshot() []pointState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]pointState, len(r.points))
	copy(out, r.points)
	return out
}

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	reg := newRegistry(logger)

	go func() {
		ticker := time.NewTicker(*flipInterval)
		defer ticker.Stop()
		for range ticker.C {
			reg.flip(*flipCount)
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:               "eipa-simulator",
		DisableStartupMessage: true,
	})

	app.Get("/points/availability", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"points": reg.snapshot()})
	})

	go func() {
		logger.Info("Fake EIPA registry listening",
			zap.Int("port", *port),
			zap.Duration("flip_interval", *flipInterval),
		)
		if err := app.Listen(fmt.Sprintf(":%d", *port)); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := app.Shutdown(); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
