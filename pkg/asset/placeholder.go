package asset

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// PlaceholderBaseURL は代替画像を返すサービスのベース URL です。
	PlaceholderBaseURL = "https://placehold.co/512x384.png"

	genFailedLabel = "Image Gen Failed"
	errorLabel     = "Image Error"
)

// GenFailedPlaceholder は、バックエンドが画像を返さなかったパネル用の代替画像 URL を返します。
// 例: 3 -> https://placehold.co/512x384.png?text=Image+Gen+Failed+P3
func GenFailedPlaceholder(panelNumber int) string {
	return placeholderURL(genFailedLabel, panelNumber)
}

// ErrorPlaceholder は、生成に失敗またはタイムアウトしたパネル用の代替画像 URL を返します。
func ErrorPlaceholder(panelNumber int) string {
	return placeholderURL(errorLabel, panelNumber)
}

// IsPlaceholder は参照が代替画像の URL かどうかを判定します。
func IsPlaceholder(ref string) bool {
	return strings.HasPrefix(ref, PlaceholderBaseURL+"?")
}

func placeholderURL(label string, panelNumber int) string {
	// QueryEscape は空白を '+' に変換します
	text := url.QueryEscape(fmt.Sprintf("%s P%d", label, panelNumber))
	return PlaceholderBaseURL + "?text=" + text
}
