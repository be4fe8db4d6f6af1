package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"google.golang.org/genai"
)

// GeminiTextAdapter は Gemini の JSON モードを使ってシーン分解を行います。
type GeminiTextAdapter struct {
	models      ContentGenerator
	model       string
	temperature float32
}

// NewGeminiTextAdapter は GeminiTextAdapter を初期化します。
func NewGeminiTextAdapter(models ContentGenerator, model string, temperature float32) (*GeminiTextAdapter, error) {
	if models == nil {
		return nil, fmt.Errorf("ContentGenerator は必須です")
	}
	if model == "" {
		return nil, fmt.Errorf("テキストモデル名は必須です")
	}
	return &GeminiTextAdapter{models: models, model: model, temperature: temperature}, nil
}

// GenerateStructuredText はスキーマ付きで1回だけ Gemini を呼び出します。
// 応答テキストが空の場合は (nil, nil) を返します。
func (a *GeminiTextAdapter) GenerateStructuredText(ctx context.Context, prompt StructuredPrompt) (*domain.PanelScript, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   prompt.ResponseSchema,
		Temperature:      genai.Ptr(a.temperature),
	}
	if prompt.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: prompt.SystemInstruction}}}
	}

	slog.DebugContext(ctx, "GeminiTextAdapter: Calling Gemini API", "model", a.model)
	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(prompt.UserPrompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("Gemini API の呼び出しに失敗しました: %w", err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return parsePanelScript(text)
}
