// Package main 火箭到达判定验证程序
//
// 无窗口地运行一枚火箭直到爆炸，逐帧打印位置、速度与前瞻距离，
// 用于核对到达帧、到达帧不位移以及爆炸火花数量。
//
// 用法：
//
//	go run ./cmd/verify_arrival [--from 400,600] [--to 400,100] [--verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/entities"
	"github.com/gonewx/fireworks/pkg/game"
	"github.com/gonewx/fireworks/pkg/render"
)

var (
	fromFlag    = flag.String("from", "400,600", "发射点 x,y")
	toFlag      = flag.String("to", "400,100", "目标点 x,y")
	seedFlag    = flag.Int64("seed", 1, "随机种子")
	maxTicks    = flag.Int("max-ticks", 1000, "最大帧数")
	verboseFlag = flag.Bool("verbose", false, "逐帧打印火箭状态")
)

// result 一次验证的结果
type result struct {
	Ticks          int
	ArrivalX       float64
	ArrivalY       float64
	Traveled       float64
	Target         float64
	Sparks         int
	Explosions     int
	MovedOnArrival bool
}

// countingSound 只计数的音效出口
type countingSound struct{ plays int }

func (s *countingSound) Unlock()        {}
func (s *countingSound) PlayExplosion() { s.plays++ }

func parsePoint(s string) (x, y float64, err error) {
	if _, err := fmt.Sscanf(s, "%g,%g", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}

// verify 运行一枚火箭直到到达，out 为逐帧输出（可为 io.Discard）
func verify(cfg *config.FireworksConfig, fromX, fromY, toX, toY float64, seed int64, limit int, out io.Writer) (result, error) {
	cfg.Scheduler.AmbientSpawnChance = 0

	sound := &countingSound{}
	rng := rand.New(rand.NewSource(seed))
	display := game.NewDisplay(cfg, rng, sound)
	display.Resize(fromX*2, fromY)
	display.StartCelebration()

	rk := entities.NewRocket(fromX, fromY, toX, toY, &cfg.Rocket, rng)
	display.Registry().AddRocket(rk)

	surface := &render.RecordingSurface{}
	res := result{Target: rk.DistanceToTarget}

	for tick := 1; tick <= limit; tick++ {
		prevX, prevY := rk.X, rk.Y
		display.Tick(surface, 0)

		fmt.Fprintf(out, "tick %3d  pos=(%8.3f, %8.3f)  speed=%8.3f  traveled=%8.3f / %8.3f\n",
			tick, rk.X, rk.Y, rk.Speed, rk.DistanceTraveled, rk.DistanceToTarget)

		if rockets, sparks, _ := display.Registry().Counts(); rockets == 0 {
			res.Ticks = tick
			res.ArrivalX, res.ArrivalY = rk.X, rk.Y
			res.Traveled = rk.DistanceTraveled
			res.Sparks = sparks
			res.Explosions = sound.plays
			res.MovedOnArrival = rk.X != prevX || rk.Y != prevY
			return res, nil
		}
	}
	return res, fmt.Errorf("rocket did not arrive within %d ticks", limit)
}

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	fromX, fromY, err := parsePoint(*fromFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	toX, toY, err := parsePoint(*toFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var out io.Writer = io.Discard
	if *verboseFlag {
		out = os.Stdout
	}

	res, err := verify(config.Default(), fromX, fromY, toX, toY, *seedFlag, *maxTicks, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Arrived after %d ticks at (%.3f, %.3f)\n", res.Ticks, res.ArrivalX, res.ArrivalY)
	fmt.Printf("Lookahead distance %.3f >= target distance %.3f\n", res.Traveled, res.Target)
	fmt.Printf("Sparks spawned: %d, explosion sounds: %d\n", res.Sparks, res.Explosions)

	ok := !res.MovedOnArrival && res.Sparks == 80 && res.Explosions == 1
	if !ok {
		fmt.Println("❌ Verification failed")
		os.Exit(1)
	}
	fmt.Println("✅ Verification passed")
}
