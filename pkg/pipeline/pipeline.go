package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// Pipeline はストーリーボード生成の全工程をオーケストレートする司令塔です。
type Pipeline struct {
	planner     ScriptPlanner
	synthesizer PanelSynthesizer
}

// NewPipeline は各コンポーネントのインターフェースを受け取り、Pipeline インスタンスを生成します。
func NewPipeline(planner ScriptPlanner, synthesizer PanelSynthesizer) (*Pipeline, error) {
	if planner == nil {
		return nil, fmt.Errorf("ScriptPlanner は必須です")
	}
	if synthesizer == nil {
		return nil, fmt.Errorf("PanelSynthesizer は必須です")
	}
	return &Pipeline{planner: planner, synthesizer: synthesizer}, nil
}

// Run は入力検証、シーン分解、並列画像生成、整列の順に実行します。
// 返すエラーは *domain.ValidationError か *domain.PlanningError のみで、
// どちらの場合も画像生成は一度も呼び出されません。
func (p *Pipeline) Run(ctx context.Context, input domain.SceneInput) (*domain.StoryboardResult, error) {
	req, err := domain.ValidateSceneInput(input)
	if err != nil {
		slog.WarnContext(ctx, "Pipeline: Invalid scene request", "error", err)
		return nil, err
	}
	return p.RunRequest(ctx, req)
}

// RunRequest は検証済みのリクエストに対してシーン分解以降を実行します。
func (p *Pipeline) RunRequest(ctx context.Context, req domain.SceneRequest) (*domain.StoryboardResult, error) {
	logger := slog.With("run_id", uuid.NewString())
	if req.HasStyle() {
		logger = logger.With("style", req.StylePreset)
	}
	startTime := time.Now()
	logger.InfoContext(ctx, "Pipeline: Starting storyboard generation", "num_panels", req.NumPanels)

	script, err := p.planner.Run(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline: Planning failed", "error", err)
		return nil, err
	}

	panels := p.synthesizeAll(ctx, script.Panels, req.StylePreset)
	result := Assemble(panels, script.TitleSuggestion)

	logger.InfoContext(ctx, "Pipeline: Storyboard generation completed",
		"panels", len(result.Panels),
		"success", result.CountOutcome(domain.OutcomeSuccess),
		"no_media", result.CountOutcome(domain.OutcomeNoMedia),
		"error", result.CountOutcome(domain.OutcomeError),
		"duration", time.Since(startTime).Round(time.Millisecond))
	return result, nil
}

// synthesizeAll は全パネルを並列に生成し、すべての完了を待ちます。
// 各タスクは自分のスロットにのみ書き込み、失敗しても他のタスクを中断しません。
func (p *Pipeline) synthesizeAll(ctx context.Context, plans []domain.PanelPlan, stylePreset string) []domain.SynthesizedPanel {
	panels := make([]domain.SynthesizedPanel, len(plans))
	var eg errgroup.Group

	for i, plan := range plans {
		eg.Go(func() error {
			panels[i] = p.synthesizer.Synthesize(ctx, plan, stylePreset)
			return nil
		})
	}

	// タスクは常に nil を返すため、Wait がエラーを返すことはありません
	_ = eg.Wait()
	return panels
}
