package prompts

import "google.golang.org/genai"

// PanelScriptSchema はシーン分解の応答として要求する JSON スキーマを返します。
// 呼び出しごとに新しい値を返すため、呼び出し側で変更しても構いません。
func PanelScriptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"titleSuggestion": {Type: genai.TypeString},
			"panels": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"panelNumber":     {Type: genai.TypeInteger},
						"description":     {Type: genai.TypeString},
						"shotDetails":     {Type: genai.TypeString},
						"dialogueOrSound": {Type: genai.TypeString},
					},
					Required:         []string{"panelNumber", "description", "shotDetails"},
					PropertyOrdering: []string{"panelNumber", "description", "shotDetails", "dialogueOrSound"},
				},
			},
		},
		Required:         []string{"panels"},
		PropertyOrdering: []string{"titleSuggestion", "panels"},
	}
}
