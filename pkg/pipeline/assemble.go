package pipeline

import (
	"cmp"
	"slices"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// Assemble はパネルを PanelNumber の昇順（数値順）に安定ソートし、タイトル候補と合わせて返します。
// 入力スライスは変更しません。
func Assemble(panels []domain.SynthesizedPanel, titleSuggestion string) *domain.StoryboardResult {
	sorted := slices.Clone(panels)
	if sorted == nil {
		sorted = []domain.SynthesizedPanel{}
	}
	slices.SortStableFunc(sorted, func(a, b domain.SynthesizedPanel) int {
		return cmp.Compare(a.PanelNumber, b.PanelNumber)
	})

	return &domain.StoryboardResult{
		Panels:          sorted,
		TitleSuggestion: titleSuggestion,
	}
}
