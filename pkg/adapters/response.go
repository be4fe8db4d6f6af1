package adapters

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"

	"github.com/shouni/go-utils/text"
	"google.golang.org/genai"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// responseText は先頭候補のテキストパートを連結します。思考パートは除外します。
func responseText(resp *genai.GenerateContentResponse) string {
	content := firstContent(resp)
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// mediaFromResponse は先頭候補から最初の画像パートを取り出します。見つからなければ nil です。
func mediaFromResponse(resp *genai.GenerateContentResponse) *Media {
	content := firstContent(resp)
	if content == nil {
		return nil
	}
	for _, part := range content.Parts {
		if part == nil {
			continue
		}
		if blob := part.InlineData; blob != nil && len(blob.Data) > 0 {
			mimeType := blob.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return &Media{
				URL:      fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(blob.Data)),
				MIMEType: mimeType,
			}
		}
		if fd := part.FileData; fd != nil && fd.FileURI != "" {
			return &Media{URL: fd.FileURI, MIMEType: fd.MIMEType}
		}
	}
	return nil
}

func firstContent(resp *genai.GenerateContentResponse) *genai.Content {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	return resp.Candidates[0].Content
}

// parsePanelScript は AI 応答から JSON を取り出して PanelScript に変換します。
// コードブロック、最外殻のオブジェクト、応答全体の順に試します。
func parsePanelScript(raw string) (*domain.PanelScript, error) {
	raw = strings.TrimSpace(raw)
	var rawJSON string

	matches := jsonBlockRegex.FindStringSubmatch(raw)
	if len(matches) > 1 {
		rawJSON = matches[1]
	} else {
		firstBracket := strings.Index(raw, "{")
		lastBracket := strings.LastIndex(raw, "}")
		if firstBracket != -1 && lastBracket != -1 && lastBracket > firstBracket {
			rawJSON = raw[firstBracket : lastBracket+1]
		} else {
			rawJSON = raw
		}
	}

	var script domain.PanelScript
	if err := json.Unmarshal([]byte(rawJSON), &script); err != nil {
		return nil, fmt.Errorf("AIからの応答に含まれるJSONの解析に失敗しました (応答抜粋: %q): %w", text.Truncate(raw, 200, "..."), err)
	}
	return &script, nil
}
