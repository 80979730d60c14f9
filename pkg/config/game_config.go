package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/xmasreel/pkg/embedded"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// GameConfigPath 默认配置文件路径（嵌入资源）
const GameConfigPath = "data/game.yaml"

// 环境变量覆盖（main 中先由 godotenv 加载 .env）
const (
	EnvShareSiteURL = "XMASREEL_SHARE_URL"
	EnvShareHashtag = "XMASREEL_SHARE_HASHTAG"
)

// 分享文案模板占位符
const (
	PlaceholderCount    = "{count}"
	PlaceholderMaxScore = "{max}"
	PlaceholderHashtag  = "{hashtag}"
	PlaceholderSiteURL  = "{url}"
)

// WindowConfig 窗口配置
type WindowConfig struct {
	Title string `yaml:"title" validate:"required,max=64"`
}

// ShareConfig 分享配置
type ShareConfig struct {
	IntentURL string `yaml:"intentURL" validate:"required,url"` // 发帖页面地址
	SiteURL   string `yaml:"siteURL" validate:"required,url"`   // 附在文案末尾的站点地址
	Hashtag   string `yaml:"hashtag" validate:"required,startswith=#"`
	Template  string `yaml:"template" validate:"required,contains={count}"`
}

// TextConfig 画面上的固定文案
type TextConfig struct {
	Prefix          string `yaml:"prefix" validate:"required"`          // 转轮左侧（上方）文字
	Suffix          string `yaml:"suffix" validate:"required"`          // 转轮右侧（下方）文字
	MaxScoreFormat  string `yaml:"maxScoreFormat" validate:"required"`  // 最高记录格式
	StreakFormat    string `yaml:"streakFormat" validate:"required"`    // 连胜格式
	DifficultyLabel string `yaml:"difficultyLabel" validate:"required"` // 难度标签
	StartButton     string `yaml:"startButton" validate:"required"`
	StopButton      string `yaml:"stopButton" validate:"required"`
	ShareButton     string `yaml:"shareButton" validate:"required"`
}

// GameConfig 游戏配置文件结构
type GameConfig struct {
	Window WindowConfig `yaml:"window"`
	Share  ShareConfig  `yaml:"share"`
	Text   TextConfig   `yaml:"text"`
}

// LoadGameConfig 从 YAML 文件加载游戏配置
// 加载后应用环境变量覆盖，然后做结构校验
//
// 参数：
//
//	path - 配置文件路径（"data/" 开头读取嵌入资源，否则读取本地文件）
//
// 返回：
//
//	*GameConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析并校验 YAML 内容
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides 使用环境变量覆盖分享相关字段
func (c *GameConfig) applyEnvOverrides() {
	if v, ok := os.LookupEnv(EnvShareSiteURL); ok && v != "" {
		c.Share.SiteURL = v
	}
	if v, ok := os.LookupEnv(EnvShareHashtag); ok && v != "" {
		c.Share.Hashtag = v
	}
}

// configValidator 懒加载的校验器实例
var configValidator *validator.Validate

func getValidator() *validator.Validate {
	if configValidator == nil {
		configValidator = validator.New(validator.WithRequiredStructEnabled())
	}
	return configValidator
}

// Validate 校验配置完整性
// 返回的错误会列出所有不合法字段
func (c *GameConfig) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(fields, ", "))
}
