package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storyboard-kit/internal/builder"
	"github.com/shouni/go-storyboard-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// scriptCmd は、コマ割り（JSON出力）のみを実行するのだ。
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "コマ割り（JSON）のみを生成するのだ。",
	Long: `シーンの説明を解析し、各コマの描写・ショット・セリフを JSON 形式で出力するのだ。
画像生成は行わないのだよ。`,
	RunE: scriptCommand,
}

func scriptCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	input, err := builder.BuildSceneInput(opts)
	if err != nil {
		return err
	}
	req, err := domain.ValidateSceneInput(input)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "コマ割り生成モードを起動するのだ！",
		"text_model", appConfig.KitConfig().GeminiModel,
		"num_panels", req.NumPanels)

	manager, err := builder.BuildManager(ctx, appConfig)
	if err != nil {
		return err
	}
	runner, err := manager.BuildScriptRunner()
	if err != nil {
		return err
	}

	script, err := runner.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("コマ割り生成中にエラーが発生したのだ: %w", err)
	}

	data, err := marshalJSON(script)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.OutputFile, data); err != nil {
		return err
	}

	slog.InfoContext(ctx, "コマ割り（JSON）の生成が完了したのだ！", "panels", len(script.Panels))
	return nil
}
