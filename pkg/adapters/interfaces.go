package adapters

import (
	"context"
	"time"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"google.golang.org/genai"
)

// TextAdapter はシーン分解（構造化テキスト生成）を担います。
// 利用可能な出力がない場合は (nil, nil) を返します。
type TextAdapter interface {
	GenerateStructuredText(ctx context.Context, prompt StructuredPrompt) (*domain.PanelScript, error)
}

// ImageAdapter は個別パネル（1枚）の画像生成を担います。
// 画像が得られなかった場合は Media が nil の ImageResult を返します。
type ImageAdapter interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
}

// ContentGenerator は genai の Models が満たす最小限の契約です。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// StructuredPrompt はシーン分解の呼び出し内容です。
type StructuredPrompt struct {
	SystemInstruction string
	UserPrompt        string
	ResponseSchema    *genai.Schema
}

// ImageRequest は1パネル分の画像生成リクエストです。
type ImageRequest struct {
	Prompt         string
	SafetySettings []*genai.SafetySetting
	Timeout        time.Duration
}

// ImageResult は画像生成の結果です。
type ImageResult struct {
	Media *Media
}

// Media は生成された画像への参照です。
type Media struct {
	URL      string
	MIMEType string
}
