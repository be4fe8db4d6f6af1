package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/publisher"

	"github.com/shouni/go-utils/iohandler"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// renderResult は出力形式に応じて生成結果を文字列化するのだ。
func renderResult(result *domain.StoryboardResult, format string) ([]byte, error) {
	if format == formatMarkdown {
		return []byte(publisher.NewMarkdownPublisher().BuildMarkdown(result)), nil
	}
	return marshalJSON(result)
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("JSON への変換に失敗したのだ: %w", err)
	}
	return append(data, '\n'), nil
}

// writeOutput は '-' なら stdout に、それ以外はファイルに書き出すのだ。
// iohandler は親ディレクトリを作らないので、先に作っておくのだよ。
func writeOutput(path string, data []byte) error {
	if path == "-" {
		path = ""
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("出力ディレクトリの作成に失敗したのだ: %w", err)
		}
	}
	if err := iohandler.WriteOutput(path, data); err != nil {
		return fmt.Errorf("出力の書き込みに失敗したのだ: %w", err)
	}
	return nil
}
