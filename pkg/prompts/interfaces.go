package prompts

import "github.com/shouni/go-storyboard-kit/pkg/domain"

// ScriptPrompt は、シーン分解用の AI プロンプトを構築する契約です。
type ScriptPrompt interface {
	// Build は、指定されたモードとデータに基づいてプロンプト文字列を生成します。
	Build(mode string, data TemplateData) (string, error)
}

// ImagePrompt は、パネル画像用の AI プロンプトを構築する契約です。
type ImagePrompt interface {
	// BuildPanel は、1コマ分の構成とスタイルから画像生成プロンプトを組み立てます。
	BuildPanel(plan domain.PanelPlan, stylePreset string) string
}
