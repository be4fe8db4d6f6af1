package config

import (
	"log/slog"
	"strings"
	"time"

	kitconfig "github.com/shouni/go-storyboard-kit/pkg/config"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultFormat   = "json"
	DefaultOutput   = "-" // 標準出力なのだ
	DefaultLogLevel = "info"
)

// Config はアプリケーション全体の環境設定（APIキーやクラウド設定）を保持する構造体なのだ。
type Config struct {
	ProjectID    string
	LocationID   string
	GeminiAPIKey string
	GeminiModel  string
	ImageModel   string
	ImageTimeout time.Duration
	RateInterval time.Duration
	RateBurst    int
	LogLevel     string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	defaults := kitconfig.DefaultConfig()
	cfg := &Config{
		ProjectID:    envutil.GetEnv("PROJECT_ID", ""),
		LocationID:   envutil.GetEnv("REGION", defaults.LocationID),
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", defaults.GeminiModel),
		ImageModel:   envutil.GetEnv("IMAGE_GEMINI_MODEL", defaults.ImageModel),
		ImageTimeout: durationEnv("IMAGE_TIMEOUT", defaults.ImageTimeout),
		RateInterval: durationEnv("RATE_INTERVAL", defaults.RateInterval),
		RateBurst:    envutil.GetEnvAsInt("RATE_BURST", defaults.RateBurst),
		LogLevel:     strings.ToLower(envutil.GetEnv("LOG_LEVEL", DefaultLogLevel)),
	}
	return cfg
}

// KitConfig は CLI のフラグを反映したうえで、ライブラリ側の設定に変換するのだ。
func (c *Config) KitConfig() kitconfig.Config {
	kc := kitconfig.DefaultConfig()
	kc.ProjectID = c.ProjectID
	kc.LocationID = c.LocationID
	kc.GeminiAPIKey = c.GeminiAPIKey
	kc.GeminiModel = c.GeminiModel
	kc.ImageModel = c.ImageModel
	kc.ImageTimeout = c.ImageTimeout
	kc.RateInterval = c.RateInterval
	kc.RateBurst = c.RateBurst

	if c.Options.AIModel != "" {
		kc.GeminiModel = c.Options.AIModel
	}
	if c.Options.ImageModel != "" {
		kc.ImageModel = c.Options.ImageModel
	}
	return kc
}

// SlogLevel は LogLevel を slog のレベルに変換するのだ。
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	Scene       string // --scene
	SceneFile   string // --scene-file
	RequestFile string // --request-file
	Sample      bool   // --sample
	NumPanels   int    // --panels (0 は未指定)
	StylePreset string // --style

	// 出力関連
	OutputFile string // --output
	Format     string // --format

	// AI挙動設定
	AIModel    string // --model
	ImageModel string // --image-model
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("環境変数の値を解釈できないため既定値を使うのだ", "key", key, "value", raw, "default", def)
		return def
	}
	return d
}
