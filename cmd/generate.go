package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storyboard-kit/internal/builder"
	"github.com/shouni/go-storyboard-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// generateCmd は、コマ割りとパネル画像の生成を通しで実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "AIに絵コンテの構成と画像を生成させますなのだ。",
	Long: `シーンの説明を解析してコマ割りを作り、各コマの画像を並列に生成するのだ。
結果はコマ番号順に並べて JSON または Markdown で出力するのだよ。`,
	RunE: generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	input, err := builder.BuildSceneInput(opts)
	if err != nil {
		return err
	}

	kitCfg := appConfig.KitConfig()
	slog.InfoContext(ctx, "絵コンテ生成パイプラインを起動するのだ！",
		"text_model", kitCfg.GeminiModel,
		"image_model", kitCfg.ImageModel,
		"format", opts.Format,
		"output", opts.OutputFile)

	manager, err := builder.BuildManager(ctx, appConfig)
	if err != nil {
		return err
	}
	runner, err := manager.BuildStoryboardRunner()
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx, input)
	if err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	data, err := renderResult(result, opts.Format)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.OutputFile, data); err != nil {
		return err
	}

	slog.InfoContext(ctx, "すべての生成工程が完了したのだ！",
		"panels", len(result.Panels),
		"failed", len(result.Panels)-result.CountOutcome(domain.OutcomeSuccess))
	return nil
}
