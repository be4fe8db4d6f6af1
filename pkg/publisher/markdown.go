package publisher

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/asset"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

const defaultTitle = "Storyboard"

// MarkdownPublisher は、生成結果を構造化された Markdown 形式で出力する役割を担います。
type MarkdownPublisher struct{}

func NewMarkdownPublisher() *MarkdownPublisher {
	return &MarkdownPublisher{}
}

// BuildMarkdown は、タイトルと各パネルの画像・ショット・セリフを Markdown 文字列にまとめます。
// パネルは result の並び順のまま出力します。
func (mp *MarkdownPublisher) BuildMarkdown(result *domain.StoryboardResult) string {
	var sb strings.Builder
	if result == nil {
		return ""
	}

	// 1. タイトルの出力
	title := strings.TrimSpace(result.TitleSuggestion)
	if title == "" {
		title = defaultTitle
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	for _, panel := range result.Panels {
		// 2. パネルヘッダーと画像
		sb.WriteString(fmt.Sprintf("## Panel %d\n\n", panel.PanelNumber))
		sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", escapeAlt(panel.AltText), panel.ImageRef))

		// 3. 演出情報
		sb.WriteString(fmt.Sprintf("- description: %s\n", oneLine(panel.Description)))
		sb.WriteString(fmt.Sprintf("- shot: %s\n", oneLine(panel.ShotDetails)))
		if panel.DialogueOrSound != "" {
			sb.WriteString(fmt.Sprintf("- sound: %s\n", oneLine(panel.DialogueOrSound)))
		}
		if asset.IsPlaceholder(panel.ImageRef) {
			sb.WriteString(fmt.Sprintf("- outcome: %s\n", panel.SynthesisOutcome))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// escapeAlt は代替テキスト内の角括弧をエスケープします。
func escapeAlt(s string) string {
	s = oneLine(s)
	s = strings.ReplaceAll(s, "[", `\[`)
	return strings.ReplaceAll(s, "]", `\]`)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
