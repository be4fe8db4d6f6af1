package prompts

import (
	_ "embed"
)

const (
	ModeStoryboard = "storyboard"
)

// TemplateData はシーン分解プロンプトのテンプレートに渡すデータ構造です。
type TemplateData struct {
	SceneDescription string
	NumPanels        int
	StylePreset      string
}

var (
	//go:embed storyboard.md
	StoryboardPrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップです。
var allTemplates = map[string]string{
	ModeStoryboard: StoryboardPrompt,
}

// StoryboardSystemInstruction はシーン分解時にテキストモデルへ渡すシステム指示です。
const StoryboardSystemInstruction = "You turn scene descriptions into shot-by-shot storyboards. Output strictly valid JSON that matches the requested schema."
