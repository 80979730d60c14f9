// reel_sim 转轮无界面模拟工具
//
// 对每个难度执行 N 次 开始-停止，停止时机随机，统计落点分布和命中率，
// 同时检查：
//   - 转动中每帧偏移都在 [0, loopHeight) 内
//   - 停止后命中的符号精确居中
//   - 停止后不再有帧回调修改偏移
//
// 可选的会话模式（-session）用 GameController 模拟连续游玩，
// 输出最高连胜和各难度停留的轮数。
//
// 用法：
//
//	go run ./cmd/reel_sim -rounds 1000 -max-frames 300 -seed 1
//	go run ./cmd/reel_sim -session 500
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/decker502/xmasreel/pkg/game"
	"github.com/decker502/xmasreel/pkg/systems"
	"github.com/joho/godotenv"
)

var (
	rounds    = flag.Int("rounds", 1000, "每个难度的 开始-停止 次数")
	maxFrames = flag.Int("max-frames", 300, "每轮最多转动的帧数")
	seed      = flag.Int64("seed", 1, "随机数种子")
	session   = flag.Int("session", 0, "会话模式的轮数（0 表示不运行）")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
)

// reelHarness 一套独立的转轮（实体、调度器、渲染表面、动画）
type reelHarness struct {
	scheduler *systems.FrameScheduler
	surface   *systems.StripSurface
	animator  *systems.ReelAnimator
}

func newReelHarness(d config.Difficulty) *reelHarness {
	em := ecs.NewEntityManager()
	scheduler := systems.NewFrameScheduler()
	surface := systems.NewStripSurface(config.ReelViewportRect(false))
	return &reelHarness{
		scheduler: scheduler,
		surface:   surface,
		animator:  systems.NewReelAnimator(em, em.CreateEntity(), scheduler, surface, d.Config()),
	}
}

// spin 转动 frames 帧，返回第一次越界的帧号（-1 表示没有越界）
func (h *reelHarness) spin(frames int) int {
	loop := h.animator.State().LoopHeight
	for i := 0; i < frames; i++ {
		h.scheduler.RunFrame()
		offset := h.animator.State().ScrollOffset
		if offset < 0 || offset >= loop {
			return i
		}
	}
	return -1
}

// centered 检查停止后是否有符号精确居中
func (h *reelHarness) centered() bool {
	center := h.surface.ViewportBounds().CenterY()
	instances := h.surface.InstanceBounds()
	idx, ok := systems.FindNearestInstance(instances, center)
	return ok && instances[idx].Bounds.CenterY() == center
}

// tierReport 单个难度的统计结果
type tierReport struct {
	difficulty config.Difficulty
	counts     []int
	wins       int
	failures   []string
}

func simulateTier(d config.Difficulty, rng *rand.Rand) tierReport {
	report := tierReport{
		difficulty: d,
		counts:     make([]int, d.Config().SymbolCount+1),
	}
	h := newReelHarness(d)

	for i := 0; i < *rounds; i++ {
		h.animator.Start(d.Config())
		if frame := h.spin(rng.Intn(*maxFrames) + 1); frame >= 0 {
			report.failures = append(report.failures, fmt.Sprintf("round %d: offset out of range at frame %d", i, frame))
		}

		outcome, ok := h.animator.Stop()
		if !ok {
			report.failures = append(report.failures, fmt.Sprintf("round %d: stop reported no outcome", i))
			continue
		}
		if !h.centered() {
			report.failures = append(report.failures, fmt.Sprintf("round %d: symbol not centered after snap", i))
		}

		stopped := h.animator.State().ScrollOffset
		if h.scheduler.RunFrame() != 0 || h.animator.State().ScrollOffset != stopped {
			report.failures = append(report.failures, fmt.Sprintf("round %d: tick ran after stop", i))
		}

		report.counts[outcome.SymbolValue]++
		if outcome.IsWin {
			report.wins++
		}
	}
	return report
}

func printTierReport(r tierReport) {
	cfg := r.difficulty.Config()
	fmt.Printf("\n=== %s (symbols=%d, speed=%.0f px/frame) ===\n", r.difficulty.Label(), cfg.SymbolCount, cfg.ScrollSpeed)
	for symbol := 1; symbol <= cfg.SymbolCount; symbol++ {
		share := float64(r.counts[symbol]) / float64(*rounds) * 100
		fmt.Printf("  %s (%2d): %5d  %5.1f%%\n", game.ToKanjiNumeral(symbol), symbol, r.counts[symbol], share)
	}
	fmt.Printf("  win rate: %.1f%% (expected %.1f%%)\n",
		float64(r.wins)/float64(*rounds)*100, 100/float64(cfg.SymbolCount))

	if len(r.failures) == 0 {
		fmt.Println("  checks: wrap ✓  snap ✓  no-tick-after-stop ✓")
		return
	}
	fmt.Printf("  checks: %d FAILURES\n", len(r.failures))
	for _, f := range r.failures {
		fmt.Printf("    - %s\n", f)
	}
}

// runSession 会话模式：用 GameController 连续游玩
func runSession(n int, rng *rand.Rand) {
	h := newReelHarness(config.DifficultyEasy)
	controller := systems.NewGameController(game.NewGameState(config.DifficultyEasy), h.animator, nil, config.ShareConfig{}, game.LogOpener{})

	roundsAt := make(map[config.Difficulty]int)
	controller.Begin()
	for i := 0; i < n; i++ {
		roundsAt[controller.State().CurrentDifficulty]++
		h.spin(rng.Intn(*maxFrames) + 1)
		controller.PrimaryAction() // stop
		controller.PrimaryAction() // start（应用预约难度）
	}

	state := controller.State()
	fmt.Printf("\n=== session (%d rounds) ===\n", n)
	fmt.Printf("  max score: %d\n", state.MaxScore)
	for _, d := range config.AllDifficulties() {
		fmt.Printf("  rounds at %-6s: %d\n", d.Label(), roundsAt[d])
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}
	if envSeed := os.Getenv("REEL_SIM_SEED"); envSeed != "" {
		if v, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			*seed = v
		}
	}
	flag.Parse()

	if !*verbose {
		log.SetFlags(0)
		log.SetOutput(io.Discard)
	}
	if *rounds <= 0 || *maxFrames <= 0 {
		fmt.Fprintln(os.Stderr, "rounds and max-frames must be positive")
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))
	fmt.Printf("reel_sim: rounds=%d max-frames=%d seed=%d\n", *rounds, *maxFrames, *seed)

	failed := false
	for _, d := range config.AllDifficulties() {
		report := simulateTier(d, rng)
		printTierReport(report)
		failed = failed || len(report.failures) > 0
	}

	if *session > 0 {
		runSession(*session, rng)
	}

	if failed {
		os.Exit(1)
	}
}
