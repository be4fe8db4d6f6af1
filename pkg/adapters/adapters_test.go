package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	calls  int
	model  string
	config *genai.GenerateContentConfig
	hasDL  bool
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	_, f.hasDL = ctx.Deadline()
	return f.resp, f.err
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestParsePanelScript(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"素の JSON", `{"titleSuggestion":"Rain","panels":[{"panelNumber":1,"description":"d","shotDetails":"s"}]}`},
		{"コードブロック", "```json\n{\"titleSuggestion\":\"Rain\",\"panels\":[{\"panelNumber\":1,\"description\":\"d\",\"shotDetails\":\"s\"}]}\n```"},
		{"前後に文章", "Here you go: {\"titleSuggestion\":\"Rain\",\"panels\":[{\"panelNumber\":1,\"description\":\"d\",\"shotDetails\":\"s\"}]} Enjoy!"},
	}
	for _, tc := range cases {
		t.Run(tc.name+"から抽出できる", func(t *testing.T) {
			script, err := parsePanelScript(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, "Rain", script.TitleSuggestion)
			require.Len(t, script.Panels, 1)
			assert.Equal(t, 1, script.Panels[0].PanelNumber)
		})
	}

	t.Run("JSON でなければエラー", func(t *testing.T) {
		_, err := parsePanelScript("sorry, I cannot help")
		assert.Error(t, err)
	})

	t.Run("エラーの応答抜粋は文字単位で切り詰める", func(t *testing.T) {
		_, err := parsePanelScript(strings.Repeat("あ", 250))
		require.Error(t, err)

		msg := err.Error()
		assert.True(t, utf8.ValidString(msg))
		assert.Contains(t, msg, strings.Repeat("あ", 200)+"...")
		assert.NotContains(t, msg, strings.Repeat("あ", 201))
	})
}

func TestGeminiTextAdapter(t *testing.T) {
	t.Run("JSON モードとスキーマで呼び出す", func(t *testing.T) {
		fm := &fakeModels{resp: textResponse(
			&genai.Part{Text: "thinking...", Thought: true},
			&genai.Part{Text: `{"panels":[{"panelNumber":2,"description":"d","shotDetails":"s","dialogueOrSound":"Boom"}]}`},
		)}
		a, err := NewGeminiTextAdapter(fm, "text-model", 0.3)
		require.NoError(t, err)

		schema := &genai.Schema{Type: genai.TypeObject}
		script, err := a.GenerateStructuredText(context.Background(), StructuredPrompt{
			SystemInstruction: "sys",
			UserPrompt:        "user",
			ResponseSchema:    schema,
		})
		require.NoError(t, err)
		require.NotNil(t, script)
		assert.Equal(t, "Boom", script.Panels[0].DialogueOrSound)

		assert.Equal(t, 1, fm.calls)
		assert.Equal(t, "text-model", fm.model)
		assert.Equal(t, "application/json", fm.config.ResponseMIMEType)
		assert.Same(t, schema, fm.config.ResponseSchema)
		require.NotNil(t, fm.config.SystemInstruction)
		assert.Equal(t, "sys", fm.config.SystemInstruction.Parts[0].Text)
	})

	t.Run("空の応答は nil を返す", func(t *testing.T) {
		fm := &fakeModels{resp: &genai.GenerateContentResponse{}}
		a, err := NewGeminiTextAdapter(fm, "text-model", 0.3)
		require.NoError(t, err)

		script, err := a.GenerateStructuredText(context.Background(), StructuredPrompt{UserPrompt: "u"})
		assert.NoError(t, err)
		assert.Nil(t, script)
	})

	t.Run("API エラーは伝播する", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		a, err := NewGeminiTextAdapter(&fakeModels{err: boom}, "text-model", 0.3)
		require.NoError(t, err)

		_, err = a.GenerateStructuredText(context.Background(), StructuredPrompt{UserPrompt: "u"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("必須引数の検証", func(t *testing.T) {
		_, err := NewGeminiTextAdapter(nil, "m", 0)
		assert.Error(t, err)
		_, err = NewGeminiTextAdapter(&fakeModels{}, "", 0)
		assert.Error(t, err)
	})
}

func TestGeminiImageAdapter(t *testing.T) {
	safety := []*genai.SafetySetting{{
		Category:  genai.HarmCategoryHateSpeech,
		Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
	}}

	t.Run("インライン画像を data URI に変換する", func(t *testing.T) {
		fm := &fakeModels{resp: textResponse(
			&genai.Part{Text: "here is your image"},
			&genai.Part{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte("abc")}},
		)}
		a, err := NewGeminiImageAdapter(fm, "image-model")
		require.NoError(t, err)

		res, err := a.GenerateImage(context.Background(), ImageRequest{Prompt: "p", SafetySettings: safety, Timeout: time.Second})
		require.NoError(t, err)
		require.NotNil(t, res.Media)
		assert.Equal(t, "data:image/jpeg;base64,YWJj", res.Media.URL)
		assert.Equal(t, "image/jpeg", res.Media.MIMEType)

		assert.Equal(t, safety, fm.config.SafetySettings)
		assert.Contains(t, fm.config.ResponseModalities, "IMAGE")
		assert.True(t, fm.hasDL)
	})

	t.Run("ファイル URI もメディアとして扱う", func(t *testing.T) {
		fm := &fakeModels{resp: textResponse(&genai.Part{FileData: &genai.FileData{FileURI: "gs://bucket/p1.png", MIMEType: "image/png"}})}
		a, err := NewGeminiImageAdapter(fm, "image-model")
		require.NoError(t, err)

		res, err := a.GenerateImage(context.Background(), ImageRequest{Prompt: "p"})
		require.NoError(t, err)
		require.NotNil(t, res.Media)
		assert.Equal(t, "gs://bucket/p1.png", res.Media.URL)
		assert.False(t, fm.hasDL)
	})

	t.Run("画像パートがなければ Media は nil", func(t *testing.T) {
		fm := &fakeModels{resp: &genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
		}}
		a, err := NewGeminiImageAdapter(fm, "image-model")
		require.NoError(t, err)

		res, err := a.GenerateImage(context.Background(), ImageRequest{Prompt: "p"})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Nil(t, res.Media)
	})

	t.Run("API エラーは伝播する", func(t *testing.T) {
		boom := errors.New("internal")
		a, err := NewGeminiImageAdapter(&fakeModels{err: boom}, "image-model")
		require.NoError(t, err)

		_, err = a.GenerateImage(context.Background(), ImageRequest{Prompt: "p"})
		assert.ErrorIs(t, err, boom)
	})
}
