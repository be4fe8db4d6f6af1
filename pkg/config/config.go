package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultLocationID   = "asia-northeast1"
	DefaultGeminiModel  = "gemini-3-flash-preview"
	DefaultImageModel   = "gemini-3-pro-image-preview"
	DefaultTemperature  = float32(0.4)
	DefaultImageTimeout = 30 * time.Second
	DefaultRateInterval = 0
	DefaultRateBurst    = 2
)

// Config は Go Storyboard Kit の各コンポーネントを動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel string // シーン分解（テキスト）用
	ImageModel  string // パネル画像用
	Temperature float32

	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string

	// --- Vertex AI Settings ---
	ProjectID  string // Google Cloud Project ID
	LocationID string // 例: "us-central1"

	// --- Generation Settings ---
	ImageTimeout time.Duration // 1パネルあたりの待機上限
	RateInterval time.Duration // 0 の場合は画像リクエストを間引きません
	RateBurst    int
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		LocationID:   DefaultLocationID,
		GeminiModel:  DefaultGeminiModel,
		ImageModel:   DefaultImageModel,
		Temperature:  DefaultTemperature,
		ImageTimeout: DefaultImageTimeout,
		RateInterval: DefaultRateInterval,
		RateBurst:    DefaultRateBurst,
	}
}

// UseVertexAI は Vertex AI バックエンドを利用する設定かどうかを返します。
func (c Config) UseVertexAI() bool {
	return c.ProjectID != ""
}
