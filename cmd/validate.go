package cmd

import (
	"fmt"

	"github.com/shouni/go-comic-director/internal/config"
	"github.com/shouni/go-comic-director/internal/pipeline"

	"github.com/spf13/cobra"
)

// validateCmd は、構図生成を行わずに補完と検証だけを実行するのだ。
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "ストーリープランのショット進行を検証するのだ。",
	Long: `ストーリープランを読み込んで演出メタデータを補完し、単調なフレーミングや
確立ショットの欠如といった問題を警告として報告するのだ。
警告は助言であって、エラーにはならないのだよ。`,
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.PlanFile == "" && len(args) == 0 && !isStdin() {
		return fmt.Errorf("ストーリープラン（--plan-file または引数）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts
	if len(args) > 0 {
		cfg.Options.PlanFile = args[0]
	} else if cfg.Options.PlanFile == "" {
		cfg.Options.PlanFile = "-"
	}

	if err := pipeline.ExecuteValidate(ctx, cfg); err != nil {
		return fmt.Errorf("検証中にエラーが発生したのだ: %w", err)
	}
	return nil
}
