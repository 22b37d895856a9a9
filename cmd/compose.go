package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-comic-director/internal/config"
	"github.com/shouni/go-comic-director/internal/pipeline"

	"github.com/spf13/cobra"
)

// composeCmd は、フィールド補完・ショット進行の検証・構図ディレクティブ生成の
// フルパイプラインを実行するのだ。
var composeCmd = &cobra.Command{
	Use:   "compose [plan-files...]",
	Short: "ストーリープランから構図ディレクティブを生成するのだ。",
	Long: `ストーリープラン（JSON または Markdown）を読み込み、欠けている演出メタデータを補完し、
ショット進行を検証した上で、パネルごとの構図ディレクティブとレポートを出力するのだ。
プランファイルを複数指定すると、並列のバッチ処理になるのだよ。`,
	RunE: composeCommand,
}

func composeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.PlanFile == "" && len(args) == 0 && !isStdin() {
		return fmt.Errorf("ストーリープラン（--plan-file または引数）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	// 複数プランが渡されたらバッチ実行に切り替えるのだ
	if len(args) > 1 {
		slog.Info("バッチ構図生成を起動するのだ！",
			"stories", len(args),
			"output_dir", opts.OutputDir)
		return pipeline.ExecuteBatch(ctx, cfg, args)
	}

	if len(args) == 1 {
		cfg.Options.PlanFile = args[0]
	} else if cfg.Options.PlanFile == "" {
		cfg.Options.PlanFile = "-"
	}

	slog.Info("構図パイプラインを起動するのだ！",
		"plan", cfg.Options.PlanFile,
		"output", opts.OutputFile,
		"report", opts.ReportFile,
		"auto_fix", opts.AutoFix)

	if err := pipeline.ExecuteCompose(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
