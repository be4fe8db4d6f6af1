package generator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shouni/go-storyboard-kit/pkg/adapters"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeImageAdapter struct {
	mu       sync.Mutex
	generate func(ctx context.Context, req adapters.ImageRequest) (*adapters.ImageResult, error)
	requests []adapters.ImageRequest
}

func (f *fakeImageAdapter) GenerateImage(ctx context.Context, req adapters.ImageRequest) (*adapters.ImageResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.generate(ctx, req)
}

func mediaResult(url string) *adapters.ImageResult {
	return &adapters.ImageResult{Media: &adapters.Media{URL: url}}
}

var plan = domain.PanelPlan{
	PanelNumber:     4,
	Description:     "A lighthouse in a storm",
	ShotDetails:     "extreme wide shot",
	DialogueOrSound: "Thunder rumbles",
}

func TestPanelGenerator_Synthesize(t *testing.T) {
	t.Run("画像が返れば success になりフィールドを引き継ぐ", func(t *testing.T) {
		fa := &fakeImageAdapter{generate: func(context.Context, adapters.ImageRequest) (*adapters.ImageResult, error) {
			return mediaResult("https://cdn.example.com/p4.png"), nil
		}}
		got := NewPanelGenerator(fa, prompts.NewImagePromptBuilder(), Options{}).Synthesize(context.Background(), plan, "noir")

		assert.Equal(t, domain.OutcomeSuccess, got.SynthesisOutcome)
		assert.Equal(t, "https://cdn.example.com/p4.png", got.ImageRef)
		assert.Equal(t, plan, got.PanelPlan)
		assert.Equal(t, plan.Description, got.AltText)

		require.Len(t, fa.requests, 1)
		req := fa.requests[0]
		assert.Contains(t, req.Prompt, plan.Description)
		assert.Contains(t, req.Prompt, plan.ShotDetails)
		assert.Contains(t, req.Prompt, "noir")
		assert.Contains(t, req.Prompt, prompts.StoryboardFramingInstruction)
		assert.Greater(t, req.Timeout, time.Duration(0))
		assert.LessOrEqual(t, req.Timeout, DefaultTimeout)
		assert.Len(t, req.SafetySettings, 4)
	})

	t.Run("画像なしなら no-media の代替画像", func(t *testing.T) {
		for _, res := range []*adapters.ImageResult{nil, {}, mediaResult("")} {
			fa := &fakeImageAdapter{generate: func(context.Context, adapters.ImageRequest) (*adapters.ImageResult, error) {
				return res, nil
			}}
			got := NewPanelGenerator(fa, prompts.NewImagePromptBuilder(), Options{}).Synthesize(context.Background(), plan, "")

			assert.Equal(t, domain.OutcomeNoMedia, got.SynthesisOutcome)
			assert.Equal(t, "https://placehold.co/512x384.png?text=Image+Gen+Failed+P4", got.ImageRef)
			assert.Equal(t, plan, got.PanelPlan)
			assert.Equal(t, plan.Description, got.AltText)
		}
	})

	t.Run("エラーなら error の代替画像", func(t *testing.T) {
		fa := &fakeImageAdapter{generate: func(context.Context, adapters.ImageRequest) (*adapters.ImageResult, error) {
			return nil, errors.New("backend exploded")
		}}
		got := NewPanelGenerator(fa, prompts.NewImagePromptBuilder(), Options{}).Synthesize(context.Background(), plan, "")

		assert.Equal(t, domain.OutcomeError, got.SynthesisOutcome)
		assert.Equal(t, "https://placehold.co/512x384.png?text=Image+Error+P4", got.ImageRef)
		assert.Equal(t, plan, got.PanelPlan)
	})

	t.Run("panic も error として吸収する", func(t *testing.T) {
		fa := &fakeImageAdapter{generate: func(context.Context, adapters.ImageRequest) (*adapters.ImageResult, error) {
			panic("nil map")
		}}
		got := NewPanelGenerator(fa, prompts.NewImagePromptBuilder(), Options{}).Synthesize(context.Background(), plan, "")

		assert.Equal(t, domain.OutcomeError, got.SynthesisOutcome)
	})

	t.Run("コンテキストを無視するバックエンドでも待機上限で打ち切る", func(t *testing.T) {
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })
		fa := &fakeImageAdapter{generate: func(context.Context, adapters.ImageRequest) (*adapters.ImageResult, error) {
			<-release
			return mediaResult("https://late.example.com/p4.png"), nil
		}}
		pg := NewPanelGenerator(fa, prompts.NewImagePromptBuilder(), Options{Timeout: 20 * time.Millisecond})

		start := time.Now()
		got := pg.Synthesize(context.Background(), plan, "")

		assert.Equal(t, domain.OutcomeError, got.SynthesisOutcome)
		assert.Equal(t, "https://placehold.co/512x384.png?text=Image+Error+P4", got.ImageRef)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("レート待機も1パネルの待機上限に含まれる", func(t *testing.T) {
		fa := &fakeImageAdapter{generate: func(context.Context, adapters.ImageRequest) (*adapters.ImageResult, error) {
			return mediaResult("https://cdn.example.com/p4.png"), nil
		}}
		pg := NewPanelGenerator(fa, prompts.NewImagePromptBuilder(), Options{
			Timeout:      50 * time.Millisecond,
			RateInterval: time.Hour,
			RateBurst:    1,
		})

		first := pg.Synthesize(context.Background(), plan, "")
		require.Equal(t, domain.OutcomeSuccess, first.SynthesisOutcome)

		start := time.Now()
		second := pg.Synthesize(context.Background(), plan, "")

		assert.Equal(t, domain.OutcomeError, second.SynthesisOutcome)
		assert.Equal(t, "https://placehold.co/512x384.png?text=Image+Error+P4", second.ImageRef)
		assert.Less(t, time.Since(start), 2*time.Second)
		assert.Len(t, fa.requests, 1)
	})

	t.Run("キャンセル済みコンテキストでのレート待機失敗は error になる", func(t *testing.T) {
		fa := &fakeImageAdapter{generate: func(context.Context, adapters.ImageRequest) (*adapters.ImageResult, error) {
			return mediaResult("https://cdn.example.com/p4.png"), nil
		}}
		pg := NewPanelGenerator(fa, prompts.NewImagePromptBuilder(), Options{RateInterval: time.Hour, RateBurst: 1})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		got := pg.Synthesize(ctx, plan, "")

		assert.Equal(t, domain.OutcomeError, got.SynthesisOutcome)
		assert.Empty(t, fa.requests)
	})
}

func TestModerateSafetySettings(t *testing.T) {
	settings := ModerateSafetySettings()
	require.Len(t, settings, 4)

	var categories []genai.HarmCategory
	for _, s := range settings {
		assert.Equal(t, genai.HarmBlockThresholdBlockMediumAndAbove, s.Threshold)
		categories = append(categories, s.Category)
	}
	assert.ElementsMatch(t, []genai.HarmCategory{
		genai.HarmCategoryHateSpeech,
		genai.HarmCategoryDangerousContent,
		genai.HarmCategoryHarassment,
		genai.HarmCategorySexuallyExplicit,
	}, categories)
}
