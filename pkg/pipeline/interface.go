package pipeline

import (
	"context"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// ScriptPlanner はシーンをパネル構成に分解するインターフェースです。
// 失敗時は *domain.PlanningError を返す必要があります。
type ScriptPlanner interface {
	Run(ctx context.Context, req domain.SceneRequest) (*domain.PanelScript, error)
}

// PanelSynthesizer は1コマ分の画像を生成するインターフェースです。失敗は結果に吸収されます。
type PanelSynthesizer interface {
	Synthesize(ctx context.Context, plan domain.PanelPlan, stylePreset string) domain.SynthesizedPanel
}
