package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/xmasreel/pkg/app"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

// 环境变量默认值（命令行参数优先）
const (
	envVerbose    = "XMASREEL_VERBOSE"
	envDifficulty = "XMASREEL_DIFFICULTY"
)

func main() {
	// .env 不存在不是错误
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	verbose := flag.Bool("verbose", os.Getenv(envVerbose) == "1", "显示详细调试信息")
	difficultyName := flag.String("difficulty", envOr(envDifficulty, string(config.DifficultyEasy)), "开局难度 (easy, mid, hard, expert)")
	fullscreen := flag.Bool("fullscreen", false, "以全屏启动")
	flag.Parse()

	difficulty, err := config.ParseDifficulty(*difficultyName)
	if err != nil {
		log.Fatalf("参数错误: %v", err)
	}

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Difficulty: difficulty,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		// NewApp 可能已关闭日志输出，错误直接写 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭时保存设置
	if !gameApp.SaveOnExit() {
		log.Printf("Warning: failed to save settings on exit")
	}

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}

// envOr 返回环境变量值，未设置时返回默认值
func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
