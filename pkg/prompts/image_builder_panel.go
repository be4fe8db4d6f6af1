package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// ImagePromptBuilder はパネル画像用のプロンプトを組み立てます。
type ImagePromptBuilder struct{}

// NewImagePromptBuilder は ImagePromptBuilder を初期化します。
func NewImagePromptBuilder() *ImagePromptBuilder {
	return &ImagePromptBuilder{}
}

// BuildPanel は、説明・ショット指定・スタイル・固定の作画指示を結合したプロンプトを返します。
// 空の要素は取り除かれます。
func (pb *ImagePromptBuilder) BuildPanel(plan domain.PanelPlan, stylePreset string) string {
	var sections []string

	// --- 1. シーンの内容 ---
	var visualParts []string
	visualParts = append(visualParts, plan.Description)
	if s := strings.TrimSpace(plan.ShotDetails); s != "" {
		visualParts = append(visualParts, fmt.Sprintf("Shot: %s", s))
	}
	sections = append(sections, joinClean(visualParts, ". "))

	// --- 2. スタイル ---
	if s := strings.TrimSpace(stylePreset); s != "" {
		sections = append(sections, fmt.Sprintf("### ARTISTIC STYLE ###\n%s", s))
	}

	// --- 3. 固定の作画指示 ---
	sections = append(sections, StoryboardFramingInstruction, CinematicTags)

	return joinClean(sections, "\n\n")
}

func joinClean(parts []string, sep string) string {
	var cleanParts []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			cleanParts = append(cleanParts, s)
		}
	}
	return strings.Join(cleanParts, sep)
}
