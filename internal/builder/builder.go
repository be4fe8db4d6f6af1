package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shouni/go-storyboard-kit/examples"
	"github.com/shouni/go-storyboard-kit/internal/config"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/workflow"

	"github.com/shouni/go-utils/iohandler"
	"gopkg.in/yaml.v3"
)

// stdinPath はファイル指定で標準入力を表す値です。
const stdinPath = "-"

// BuildManager は、環境設定と CLI オプションから workflow.Manager を構築します。
func BuildManager(ctx context.Context, cfg *config.Config) (*workflow.Manager, error) {
	m, err := workflow.New(ctx, workflow.ManagerArgs{Config: cfg.KitConfig()})
	if err != nil {
		return nil, fmt.Errorf("ワークフローマネージャーの初期化に失敗しました: %w", err)
	}
	return m, nil
}

// BuildSceneInput は、サンプルまたはリクエストファイル（YAML/JSON）とフラグを組み合わせて SceneInput を作ります。
// フラグで指定された値はファイルの値より優先されます。検証は行いません。
func BuildSceneInput(opts config.GenerateOptions) (domain.SceneInput, error) {
	var input domain.SceneInput

	switch {
	case opts.Sample:
		sample, err := examples.LoadSampleSceneInput()
		if err != nil {
			return domain.SceneInput{}, err
		}
		input = sample
	case opts.RequestFile != "":
		data, err := readSource(opts.RequestFile)
		if err != nil {
			return domain.SceneInput{}, fmt.Errorf("リクエストファイルの読み込みに失敗しました: %w", err)
		}
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&input); err != nil && err != io.EOF {
			return domain.SceneInput{}, fmt.Errorf("リクエストファイルの解析に失敗しました: %w", err)
		}
	}

	switch {
	case opts.Scene != "":
		input.SceneDescription = opts.Scene
	case opts.SceneFile != "":
		data, err := readSource(opts.SceneFile)
		if err != nil {
			return domain.SceneInput{}, fmt.Errorf("シーンファイルの読み込みに失敗しました: %w", err)
		}
		input.SceneDescription = strings.TrimSpace(string(data))
	}

	if opts.NumPanels != 0 {
		n := opts.NumPanels
		input.NumPanels = &n
	}
	if opts.StylePreset != "" {
		style := opts.StylePreset
		input.StylePreset = &style
	}

	if input.SceneDescription == "" {
		return domain.SceneInput{}, fmt.Errorf("シーン（--scene、--scene-file または --request-file）を指定してください")
	}
	return input, nil
}

// readSource は '-' を標準入力として扱い、iohandler で読み込みます。
func readSource(path string) ([]byte, error) {
	if path == stdinPath {
		path = ""
	}
	return iohandler.ReadInput(path)
}
