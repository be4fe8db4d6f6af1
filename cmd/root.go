package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-storyboard-kit/internal/config"

	"github.com/spf13/cobra"
)

const appName = "storyboard-go"

// opts は CLI フラグの値を保持するのだ。
var opts config.GenerateOptions

// appConfig は PersistentPreRunE で読み込んだ環境設定なのだ。
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "シーンの説明から絵コンテを生成するのだ。",
	Long: `シーンの説明文を AI でコマ割りし、各コマの画像を並列に生成するのだ。
失敗したコマは代替画像に置き換えるので、全体が止まることはないのだよ。`,
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Scene, "scene", "s", "", "シーンの説明文なのだ（20文字以上）。")
	rootCmd.PersistentFlags().StringVarP(&opts.SceneFile, "scene-file", "f", "", "シーンの説明文を読むファイル（'-'で標準入力なのだ）。")
	rootCmd.PersistentFlags().StringVarP(&opts.RequestFile, "request-file", "r", "", "YAML/JSON 形式のリクエストファイルなのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.Sample, "sample", false, "同梱のサンプルリクエストを使うのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.NumPanels, "panels", "n", 0, "コマ数（2〜10、省略時は6）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.StylePreset, "style", "", "画風のプリセットなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output", "o", config.DefaultOutput, "保存パス（'-'で標準出力なのだ）。")
	rootCmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "出力形式（json または markdown）なのだ。")

	// --- AIモデル設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", "", "テキスト生成用の Gemini モデル名なのだ（省略時は環境変数）。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", "", "画像生成用の Gemini モデル名なのだ（省略時は環境変数）。")
}

// preRunAppE は、コマンド実行前にロガーの設定と必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	appConfig = config.LoadConfig()
	appConfig.Options = opts

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: appConfig.SlogLevel()}))
	slog.SetDefault(logger)

	// Gemini API か Vertex AI のどちらかの認証情報が欠かせないのだ！
	if appConfig.GeminiAPIKey == "" && appConfig.ProjectID == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY または PROJECT_ID が設定されていません")
	}
	if opts.Format != formatJSON && opts.Format != formatMarkdown {
		return fmt.Errorf("不明な出力形式なのだ: %q（json または markdown）", opts.Format)
	}
	return nil
}

func init() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(generateCmd, scriptCmd)
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
