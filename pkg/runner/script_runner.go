package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-storyboard-kit/pkg/adapters"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
)

var (
	errNoOutput    = errors.New("テキストバックエンドから利用可能な出力がありませんでした")
	errEmptyPanels = errors.New("テキストバックエンドの出力にパネルが含まれていません")
)

// StoryboardScriptRunner はシーン説明を番号付きのパネル構成に分解します。
type StoryboardScriptRunner struct {
	promptBuilder prompts.ScriptPrompt
	adapter       adapters.TextAdapter
}

// NewStoryboardScriptRunner は依存関係を注入して初期化します。
func NewStoryboardScriptRunner(pb prompts.ScriptPrompt, adapter adapters.TextAdapter) *StoryboardScriptRunner {
	return &StoryboardScriptRunner{
		promptBuilder: pb,
		adapter:       adapter,
	}
}

// Run はテキストバックエンドを1回だけ呼び出してパネル構成を生成します。再試行は行いません。
// 失敗時は常に *domain.PlanningError を返します。
func (sr *StoryboardScriptRunner) Run(ctx context.Context, req domain.SceneRequest) (*domain.PanelScript, error) {
	finalPrompt, err := sr.promptBuilder.Build(prompts.ModeStoryboard, prompts.TemplateData{
		SceneDescription: req.SceneDescription,
		NumPanels:        req.NumPanels,
		StylePreset:      req.StylePreset,
	})
	if err != nil {
		return nil, domain.NewPlanningError(fmt.Errorf("プロンプト生成に失敗: %w", err))
	}

	slog.InfoContext(ctx, "ScriptRunner: Planning storyboard panels", "num_panels", req.NumPanels, "style", req.StylePreset)
	startTime := time.Now()

	script, err := sr.adapter.GenerateStructuredText(ctx, adapters.StructuredPrompt{
		SystemInstruction: prompts.StoryboardSystemInstruction,
		UserPrompt:        finalPrompt,
		ResponseSchema:    prompts.PanelScriptSchema(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "ScriptRunner: Text backend call failed", "error", err)
		return nil, domain.NewPlanningError(err)
	}
	if script == nil {
		slog.ErrorContext(ctx, "ScriptRunner: Text backend returned no output")
		return nil, domain.NewPlanningError(errNoOutput)
	}
	if len(script.Panels) == 0 {
		slog.ErrorContext(ctx, "ScriptRunner: Text backend returned no panels")
		return nil, domain.NewPlanningError(errEmptyPanels)
	}

	slog.InfoContext(ctx, "ScriptRunner: Planning completed",
		"planned_panels", len(script.Panels),
		"panel_numbers", domain.Panels(script.Panels).Numbers(),
		"requested_panels", req.NumPanels,
		"duration", time.Since(startTime).Round(time.Millisecond))
	return script, nil
}
