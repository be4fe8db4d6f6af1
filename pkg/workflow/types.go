package workflow

import (
	"context"

	"github.com/shouni/go-storyboard-kit/pkg/adapters"
	"github.com/shouni/go-storyboard-kit/pkg/config"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
)

// WorkflowBuilder は、ストーリーボード処理のランナーを構築するためのビルダー・インターフェースを定義します。
type WorkflowBuilder interface {
	BuildScriptRunner() (ScriptRunner, error)
	BuildStoryboardRunner() (StoryboardRunner, error)
}

// ScriptRunner は、シーン説明からパネル構成のみを生成する責務を持ちます。
type ScriptRunner interface {
	Run(ctx context.Context, req domain.SceneRequest) (*domain.PanelScript, error)
}

// StoryboardRunner は、シーン説明から画像付きのストーリーボードを生成する責務を持ちます。
type StoryboardRunner interface {
	Run(ctx context.Context, input domain.SceneInput) (*domain.StoryboardResult, error)
}

// ManagerArgs は Manager の初期化に必要な引数です。
type ManagerArgs struct {
	Config config.Config
	// Models が nil の場合は Config の認証情報から genai クライアントを作成します。
	Models       adapters.ContentGenerator
	ScriptPrompt prompts.ScriptPrompt
	ImagePrompt  prompts.ImagePrompt
}
