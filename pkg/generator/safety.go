package generator

import "google.golang.org/genai"

// moderatedCategories は中程度の閾値でブロックするカテゴリです。
var moderatedCategories = []genai.HarmCategory{
	genai.HarmCategoryHateSpeech,
	genai.HarmCategoryDangerousContent,
	genai.HarmCategoryHarassment,
	genai.HarmCategorySexuallyExplicit,
}

// ModerateSafetySettings はすべての画像生成に共通で適用する安全設定を返します。
func ModerateSafetySettings() []*genai.SafetySetting {
	settings := make([]*genai.SafetySetting, 0, len(moderatedCategories))
	for _, c := range moderatedCategories {
		settings = append(settings, &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}
