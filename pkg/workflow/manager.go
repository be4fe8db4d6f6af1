package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-storyboard-kit/pkg/adapters"
	"github.com/shouni/go-storyboard-kit/pkg/config"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"

	"google.golang.org/genai"
)

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg          config.Config
	textAdapter  adapters.TextAdapter
	imageAdapter adapters.ImageAdapter
	scriptPrompt prompts.ScriptPrompt
	imagePrompt  prompts.ImagePrompt
}

// New は、設定を基に新しい Manager を初期化します。
func New(ctx context.Context, args ManagerArgs) (*Manager, error) {
	cfg := args.Config
	if cfg.GeminiModel == "" {
		return nil, fmt.Errorf("GeminiModel は必須です")
	}
	if cfg.ImageModel == "" {
		return nil, fmt.Errorf("ImageModel は必須です")
	}

	models, err := initializeAIClient(ctx, cfg, args.Models)
	if err != nil {
		return nil, err
	}

	textAdapter, err := adapters.NewGeminiTextAdapter(models, cfg.GeminiModel, cfg.Temperature)
	if err != nil {
		return nil, fmt.Errorf("テキストアダプターの初期化に失敗しました: %w", err)
	}
	imageAdapter, err := adapters.NewGeminiImageAdapter(models, cfg.ImageModel)
	if err != nil {
		return nil, fmt.Errorf("画像アダプターの初期化に失敗しました: %w", err)
	}

	sPrompt, err := initializeScriptPrompt(args.ScriptPrompt)
	if err != nil {
		return nil, err
	}

	return &Manager{
		cfg:          cfg,
		textAdapter:  textAdapter,
		imageAdapter: imageAdapter,
		scriptPrompt: sPrompt,
		imagePrompt:  initializeImagePrompt(args.ImagePrompt),
	}, nil
}

// initializeAIClient は genai クライアントを初期化し、その Models を返します。
// 既存の ContentGenerator が渡された場合はそれを返します。
func initializeAIClient(ctx context.Context, cfg config.Config, models adapters.ContentGenerator) (adapters.ContentGenerator, error) {
	if models != nil {
		return models, nil
	}

	var clientConfig *genai.ClientConfig
	switch {
	case cfg.UseVertexAI():
		clientConfig = &genai.ClientConfig{
			Project:  cfg.ProjectID,
			Location: cfg.LocationID,
			Backend:  genai.BackendVertexAI,
		}
	case cfg.GeminiAPIKey != "":
		clientConfig = &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		}
	default:
		return nil, fmt.Errorf("GeminiAPIKey または ProjectID のいずれかが必要です")
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return client.Models, nil
}

// initializeScriptPrompt は ScriptPrompt ビルダーを初期化します。
// 引数として既存のビルダーが渡された場合はそれを返し、nil の場合は新規作成します。
func initializeScriptPrompt(scriptPrompt prompts.ScriptPrompt) (prompts.ScriptPrompt, error) {
	if scriptPrompt != nil {
		return scriptPrompt, nil
	}

	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("TextPromptBuilder の新規作成に失敗しました: %w", err)
	}

	return pb, nil
}

func initializeImagePrompt(imagePrompt prompts.ImagePrompt) prompts.ImagePrompt {
	if imagePrompt != nil {
		return imagePrompt
	}
	return prompts.NewImagePromptBuilder()
}
