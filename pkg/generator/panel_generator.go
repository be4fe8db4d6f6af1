package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-storyboard-kit/pkg/adapters"
	"github.com/shouni/go-storyboard-kit/pkg/asset"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultTimeout は1パネルの画像生成を待つ上限です。
const DefaultTimeout = 30 * time.Second

var errNoMedia = errors.New("画像生成 API が画像を返しませんでした")

// Options は PanelGenerator の任意設定です。
type Options struct {
	// Timeout が 0 以下の場合は DefaultTimeout を使います。
	Timeout time.Duration
	// RateInterval が 0 の場合はリクエストを間引きません。
	RateInterval time.Duration
	RateBurst    int
}

// PanelGenerator は1コマ分の画像を生成し、失敗を代替画像に置き換えて必ず結果を返します。
type PanelGenerator struct {
	adapter       adapters.ImageAdapter
	promptBuilder prompts.ImagePrompt
	limiter       *rate.Limiter
	timeout       time.Duration
	safety        []*genai.SafetySetting
}

// NewPanelGenerator は PanelGenerator の新しいインスタンスを初期化します。
func NewPanelGenerator(adapter adapters.ImageAdapter, pb prompts.ImagePrompt, opts Options) *PanelGenerator {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if opts.RateInterval > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(opts.RateInterval), burst)
	}

	return &PanelGenerator{
		adapter:       adapter,
		promptBuilder: pb,
		limiter:       limiter,
		timeout:       timeout,
		safety:        ModerateSafetySettings(),
	}
}

// Synthesize は1コマ分の画像を生成します。エラーは返さず、失敗は SynthesisOutcome と代替画像で表現します。
// 構成の各フィールドは変更せずに引き継ぎ、代替テキストには常に説明文を使います。
func (pg *PanelGenerator) Synthesize(ctx context.Context, plan domain.PanelPlan, stylePreset string) domain.SynthesizedPanel {
	logger := slog.With("panel_number", plan.PanelNumber)
	logger.DebugContext(ctx, "Starting panel generation")
	startTime := time.Now()

	panel := domain.SynthesizedPanel{
		PanelPlan: plan,
		AltText:   plan.Description,
	}

	res, err := pg.generate(ctx, plan, stylePreset)
	switch {
	case err != nil:
		panel.SynthesisOutcome = domain.OutcomeError
		panel.ImageRef = asset.ErrorPlaceholder(plan.PanelNumber)
		logger.WarnContext(ctx, "Panel generation failed; using placeholder",
			"outcome", panel.SynthesisOutcome,
			"error", err,
			"duration", time.Since(startTime).Round(time.Millisecond))
	case res == nil || res.Media == nil || res.Media.URL == "":
		panel.SynthesisOutcome = domain.OutcomeNoMedia
		panel.ImageRef = asset.GenFailedPlaceholder(plan.PanelNumber)
		logger.WarnContext(ctx, "Panel generation returned no media; using placeholder",
			"outcome", panel.SynthesisOutcome,
			"error", errNoMedia,
			"duration", time.Since(startTime).Round(time.Millisecond))
	default:
		panel.SynthesisOutcome = domain.OutcomeSuccess
		panel.ImageRef = res.Media.URL
		logger.InfoContext(ctx, "Panel generation completed",
			"outcome", panel.SynthesisOutcome,
			"duration", time.Since(startTime).Round(time.Millisecond))
	}
	return panel
}

// generate は待機上限付きで画像生成を1回だけ呼び出します。
// 上限はレートリミッターの待機を含めた1パネル全体にかかります。
// バックエンドがコンテキストを無視しても、上限を過ぎた時点でエラーとして戻ります。
func (pg *PanelGenerator) generate(ctx context.Context, plan domain.PanelPlan, stylePreset string) (*adapters.ImageResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, pg.timeout)
	defer cancel()

	if pg.limiter != nil {
		// 期限内にトークンが得られない場合、Wait は即座にエラーを返します
		if err := pg.limiter.Wait(callCtx); err != nil {
			return nil, fmt.Errorf("レートリミッターの待機に失敗しました: %w", err)
		}
	}

	remaining := pg.timeout
	if deadline, ok := callCtx.Deadline(); ok {
		remaining = time.Until(deadline)
	}
	req := adapters.ImageRequest{
		Prompt:         pg.promptBuilder.BuildPanel(plan, stylePreset),
		SafetySettings: pg.safety,
		Timeout:        remaining,
	}

	type callResult struct {
		res *adapters.ImageResult
		err error
	}
	// バッファ付きなので、タイムアウト後に戻ってきた呼び出しもブロックしません
	done := make(chan callResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callResult{err: fmt.Errorf("画像生成中に panic が発生しました: %v", r)}
			}
		}()
		res, err := pg.adapter.GenerateImage(callCtx, req)
		done <- callResult{res: res, err: err}
	}()

	select {
	case r := <-done:
		return r.res, r.err
	case <-callCtx.Done():
		return nil, fmt.Errorf("panel %d の画像生成が待機上限に達しました: %w", plan.PanelNumber, callCtx.Err())
	}
}
