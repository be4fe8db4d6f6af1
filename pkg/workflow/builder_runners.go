package workflow

import (
	"fmt"

	"github.com/shouni/go-storyboard-kit/pkg/generator"
	"github.com/shouni/go-storyboard-kit/pkg/pipeline"
	"github.com/shouni/go-storyboard-kit/pkg/runner"
)

var _ WorkflowBuilder = (*Manager)(nil)

// BuildScriptRunner は、シーン分解を担当する Runner を作成します。
func (m *Manager) BuildScriptRunner() (ScriptRunner, error) {
	return runner.NewStoryboardScriptRunner(m.scriptPrompt, m.textAdapter), nil
}

// BuildStoryboardRunner は、シーン分解からパネル画像生成までを通しで実行する Runner を作成します。
func (m *Manager) BuildStoryboardRunner() (StoryboardRunner, error) {
	scriptRunner := runner.NewStoryboardScriptRunner(m.scriptPrompt, m.textAdapter)
	panelGenerator := generator.NewPanelGenerator(m.imageAdapter, m.imagePrompt, generator.Options{
		Timeout:      m.cfg.ImageTimeout,
		RateInterval: m.cfg.RateInterval,
		RateBurst:    m.cfg.RateBurst,
	})

	p, err := pipeline.NewPipeline(scriptRunner, panelGenerator)
	if err != nil {
		return nil, fmt.Errorf("パイプラインの初期化に失敗しました: %w", err)
	}
	return p, nil
}
