package domain

// SynthesisOutcome はパネル画像生成の結果種別を表します。
type SynthesisOutcome string

const (
	// OutcomeSuccess は画像が正常に生成されたことを示します。
	OutcomeSuccess SynthesisOutcome = "success"
	// OutcomeNoMedia はバックエンドが応答したものの画像を返さなかったことを示します。
	OutcomeNoMedia SynthesisOutcome = "no-media"
	// OutcomeError はバックエンドの失敗またはタイムアウトを示します。
	OutcomeError SynthesisOutcome = "error"
)

// PanelPlan はテキストバックエンドが生成した1コマ分の構成です。
// PanelNumber はバックエンドが採番した値をそのまま保持し、一意性は検証しません。
type PanelPlan struct {
	PanelNumber     int    `json:"panelNumber" yaml:"panelNumber"`
	Description     string `json:"description" yaml:"description"`
	ShotDetails     string `json:"shotDetails" yaml:"shotDetails"`
	DialogueOrSound string `json:"dialogueOrSound,omitempty" yaml:"dialogueOrSound,omitempty"`
}

// PanelScript はシーン分解（第1段階）の出力です。
type PanelScript struct {
	Panels          []PanelPlan `json:"panels"`
	TitleSuggestion string      `json:"titleSuggestion,omitempty"`
}

// SynthesizedPanel は PanelPlan に画像参照と生成結果を付与したものです。
type SynthesizedPanel struct {
	PanelPlan

	ImageRef         string           `json:"imageRef"`
	AltText          string           `json:"altText"`
	SynthesisOutcome SynthesisOutcome `json:"synthesisOutcome"`
}

// StoryboardResult はパイプライン全体の最終出力です。Panels は PanelNumber の昇順に並びます。
type StoryboardResult struct {
	Panels          []SynthesizedPanel `json:"panels"`
	TitleSuggestion string             `json:"titleSuggestion,omitempty"`
}

// Panels は PanelPlan のスライスに補助メソッドを持たせた型です。
type Panels []PanelPlan

// Numbers はスライスの並び順のまま PanelNumber を返します。
func (ps Panels) Numbers() []int {
	numbers := make([]int, 0, len(ps))
	for _, p := range ps {
		numbers = append(numbers, p.PanelNumber)
	}
	return numbers
}

// CountOutcome は指定した結果種別のパネル数を数えます。
func (r *StoryboardResult) CountOutcome(outcome SynthesisOutcome) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, p := range r.Panels {
		if p.SynthesisOutcome == outcome {
			n++
		}
	}
	return n
}
