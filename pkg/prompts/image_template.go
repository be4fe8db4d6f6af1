package prompts

const (
	// StoryboardFramingInstruction はすべてのパネル画像に付与する固定の作画指示です。
	StoryboardFramingInstruction = "Storyboard panel illustration with clear visual framing: readable composition, a single focal point, strong silhouettes and unambiguous staging. No text, captions or speech bubbles."

	// CinematicTags クオリティ向上のための共通タグ
	CinematicTags = "cinematic composition, sharp focus"
)
