package cmd

import (
	"fmt"

	"github.com/shouni/go-comic-director/internal/config"
	engine "github.com/shouni/go-comic-director/pkg/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.PlanFile, "plan-file", "f", "", "ストーリープランのパス（JSON/Markdown、'-'で標準入力なのだ）。")
	rootCmd.PersistentFlags().StringVarP(&opts.CharacterConfig, "char-config", "c", config.DefaultCharactersFile, "キャラクターの視覚情報（DNA）を定義したJSONパスなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", config.DefaultOutputFile, "構図結果JSONの保存パス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ReportFile, "report-file", "r", config.DefaultReportFile, "Markdownレポートの保存パス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.OutputDir, "output-dir", config.DefaultOutputDir, "バッチ実行時のレポート出力先ディレクトリなのだ。")

	// --- エンジン挙動設定 ---
	rootCmd.PersistentFlags().IntVarP(&opts.PanelLimit, "panel-limit", "p", engine.DefaultPanelLimit, "1ストーリーで処理するパネルの最大数なのだ。")
	rootCmd.PersistentFlags().IntVar(&opts.RunLength, "run-length", engine.DefaultRepetitionRunLength, "単調フレーミング警告を出す同一ショットの連続数なのだ。")
	rootCmd.PersistentFlags().Float64Var(&opts.OverlapThreshold, "overlap-threshold", engine.DefaultSceneOverlapThreshold, "same_location 推定のシーン類似度しきい値なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.AutoFix, "auto-fix", false, "シーン冒頭ショットの安全な自動修正を有効にするのだ。")

	// --- 実行制御 ---
	rootCmd.PersistentFlags().DurationVar(&opts.RateInterval, "rate-interval", engine.DefaultRateInterval, "バッチ実行時のストーリー処理間隔なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.RequestTimeout, "request-timeout", config.DefaultRequestTimeout, "リモート入出力のタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前にフラグの整合性チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.PanelLimit <= 0 {
		return fmt.Errorf("エラー: --panel-limit は 1 以上を指定してほしいのだ")
	}
	if opts.OverlapThreshold < 0 || opts.OverlapThreshold > 1 {
		return fmt.Errorf("エラー: --overlap-threshold は 0.0〜1.0 の範囲で指定してほしいのだ")
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"comic-director",
		addAppFlags,
		preRunAppE,
		composeCmd,
		validateCmd,
		templatesCmd,
	)
}
