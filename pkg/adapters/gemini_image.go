package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// GeminiImageAdapter は Gemini の画像出力モダリティでパネル画像を生成します。
type GeminiImageAdapter struct {
	models ContentGenerator
	model  string
}

// NewGeminiImageAdapter は GeminiImageAdapter を初期化します。
func NewGeminiImageAdapter(models ContentGenerator, model string) (*GeminiImageAdapter, error) {
	if models == nil {
		return nil, fmt.Errorf("ContentGenerator は必須です")
	}
	if model == "" {
		return nil, fmt.Errorf("画像モデル名は必須です")
	}
	return &GeminiImageAdapter{models: models, model: model}, nil
}

// GenerateImage はプロンプトから1枚の画像を生成します。
// 応答に画像パートが含まれない場合は Media が nil の結果を返します。
func (a *GeminiImageAdapter) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		SafetySettings:     req.SafetySettings,
	}

	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("画像生成 API の呼び出しに失敗しました: %w", err)
	}

	media := mediaFromResponse(resp)
	if media == nil && resp != nil && resp.PromptFeedback != nil {
		slog.DebugContext(ctx, "GeminiImageAdapter: prompt was blocked", "block_reason", resp.PromptFeedback.BlockReason)
	}
	return &ImageResult{Media: media}, nil
}
