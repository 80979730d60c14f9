// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/game"
	"github.com/decker502/xmasreel/pkg/scenes"
	"github.com/decker502/xmasreel/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Difficulty 开局难度，为空则为 easy
	Difficulty config.Difficulty
	// Fullscreen 以全屏启动（同时写入用户设置）
	Fullscreen bool
	// GameConfigPath 游戏配置文件路径，为空则使用嵌入的 data/game.yaml
	GameConfigPath string
	// ShareOpener 分享链接打开方式，为空则使用系统浏览器
	ShareOpener game.ShareOpener
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	scheduler       *systems.FrameScheduler
	settingsManager *game.SettingsManager
	gameConfig      *config.GameConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.GameConfigPath
	if configPath == "" {
		configPath = config.GameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载游戏配置: %s", configPath)

	// 创建资源管理器并加载字体
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadDefaultFont(); err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	// 用户设置（gdata 不可用时降级为仅内存设置）
	gdataManager, err := game.OpenGdataManager()
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not be persisted)", err)
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}

	// 初始化音频
	audioContext := audio.NewContext(game.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	opener := cfg.ShareOpener
	if opener == nil {
		opener = game.BrowserOpener{}
	}

	scheduler := systems.NewFrameScheduler()
	sceneManager := game.NewSceneManager()
	slotScene := scenes.NewSlotScene(scenes.SlotSceneDeps{
		ResourceManager:   resourceManager,
		GameConfig:        gameConfig,
		Scheduler:         scheduler,
		Sounds:            audioManager,
		Opener:            opener,
		SettingsManager:   settingsManager,
		InitialDifficulty: cfg.Difficulty,
	})
	sceneManager.SwitchTo(slotScene)

	log.Printf("[App] Starting at difficulty: %s", slotScene.Controller().State().CurrentDifficulty)

	return &App{
		sceneManager:    sceneManager,
		scheduler:       scheduler,
		settingsManager: settingsManager,
		gameConfig:      gameConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settingsManager.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
		a.saveSettings()
	}

	// 渲染时钟：每个 tick 推进一帧
	a.scheduler.RunFrame()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
	a.saveSettings()
}

// saveSettings 保存用户设置，失败只记录日志
func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// letterbox 区域使用画面底色
	screen.Fill(config.BackgroundColor)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 由当前场景根据窗口宽度决定（横排 / 竖排布局），Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.sceneManager.Layout(outsideWidth, outsideHeight)
}

// SaveOnExit 退出时保存状态（当前场景与用户设置）
func (a *App) SaveOnExit() bool {
	return a.sceneManager.SaveOnExit()
}

// WindowTitle 返回配置的窗口标题
func (a *App) WindowTitle() string {
	return a.gameConfig.Window.Title
}

// Fullscreen 返回用户设置中是否全屏
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
