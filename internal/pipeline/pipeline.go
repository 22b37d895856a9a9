package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shouni/go-comic-director/internal/builder"
	"github.com/shouni/go-comic-director/internal/config"
	"github.com/shouni/go-comic-director/pkg/director"
	"github.com/shouni/go-comic-director/pkg/domain"
	"github.com/shouni/go-comic-director/pkg/enrich"
	"github.com/shouni/go-comic-director/pkg/parser"

	gcsfactory "github.com/shouni/go-remote-io/remoteio/gcs"
)

// ExecuteCompose は、ストーリープランを読み込み、補完・検証・構図生成の
// フルパイプラインを実行して結果とレポートを保存するのだ。
func ExecuteCompose(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	plan, err := loadPlan(ctx, appCtx, cfg.Options.PlanFile)
	if err != nil {
		return err
	}

	result, err := appCtx.Manager.ComposeStory(ctx, plan, cfg.Options.ReportFile)
	if err != nil {
		return fmt.Errorf("構図生成に失敗したのだ: %w", err)
	}

	// 構図結果のJSONを保存するのだ
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("構図結果のエンコードに失敗したのだ: %w", err)
	}
	outputPath := cfg.Options.OutputFile
	if err := appCtx.Writer.Write(ctx, outputPath, bytes.NewReader(data), "application/json; charset=utf-8"); err != nil {
		return fmt.Errorf("構図結果の保存に失敗したのだ (path: %s): %w", outputPath, err)
	}

	slog.Info("構図パイプラインの全工程が完了したのだ！",
		"output", outputPath,
		"report", result.ReportPath,
		"warnings", len(result.Warnings),
	)
	return nil
}

// ExecuteBatch は、複数のストーリープランを並列に処理し、ストーリーごとの
// レポートと全体の結果JSONを保存するのだ。
func ExecuteBatch(ctx context.Context, cfg *config.Config, planFiles []string) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	plans := make([]*domain.StoryPlan, 0, len(planFiles))
	for _, f := range planFiles {
		plan, err := loadPlan(ctx, appCtx, f)
		if err != nil {
			return err
		}
		plans = append(plans, plan)
	}

	results, err := appCtx.Manager.ComposeBatch(ctx, plans, cfg.Options.OutputDir)
	if err != nil {
		return fmt.Errorf("バッチ構図生成に失敗したのだ: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("構図結果のエンコードに失敗したのだ: %w", err)
	}
	outputPath := cfg.Options.OutputFile
	if err := appCtx.Writer.Write(ctx, outputPath, bytes.NewReader(data), "application/json; charset=utf-8"); err != nil {
		return fmt.Errorf("構図結果の保存に失敗したのだ (path: %s): %w", outputPath, err)
	}

	slog.Info("バッチ構図生成の全工程が完了したのだ！",
		"stories", len(results),
		"output", outputPath,
	)
	return nil
}

// ExecuteValidate は、構図ディレクティブを生成せず、補完とショット進行の
// 検証だけを実行して警告を報告するのだ。
func ExecuteValidate(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	plan, err := loadPlan(ctx, appCtx, cfg.Options.PlanFile)
	if err != nil {
		return err
	}

	engineCfg := cfg.ToEngineConfig()
	seq, _, err := enrich.New(engineCfg).Enrich(plan.Panels)
	if err != nil {
		return fmt.Errorf("フィールド補完に失敗したのだ: %w", err)
	}

	warnings := director.NewProgressionChecker(engineCfg.RepetitionRunLength).Check(seq)
	for _, w := range warnings {
		slog.WarnContext(ctx, "ショット進行の警告",
			"category", w.Category,
			"panel_ids", w.PanelIDs,
			"message", w.Message,
		)
	}

	slog.Info("検証が完了したのだ！",
		"story_id", plan.ID,
		"panels", seq.Len(),
		"warnings", len(warnings),
	)
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	manager, err := builder.BuildWorkflowManager(cfg, reader, writer)
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, reader, writer, manager)
	return &appCtx, nil
}

// loadPlan はストーリープランを読み込むのだ。拡張子が .md なら Markdown として、
// それ以外は JSON として解釈するのだ。パスが '-' の場合は標準入力から読むのだよ。
func loadPlan(ctx context.Context, appCtx *builder.AppContext, planFile string) (*domain.StoryPlan, error) {
	if planFile == "" {
		return nil, fmt.Errorf("ストーリープラン（--plan-file）を指定してほしいのだ")
	}

	if planFile == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("標準入力の読み込みに失敗したのだ: %w", err)
		}
		return parser.NewMarkdownParser().Parse(string(content))
	}

	if strings.HasSuffix(planFile, ".md") {
		rc, err := appCtx.Reader.Open(ctx, planFile)
		if err != nil {
			return nil, fmt.Errorf("プランファイル '%s' の読み込みに失敗したのだ: %w", planFile, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("プランファイル '%s' の読み込みに失敗したのだ: %w", planFile, err)
		}
		return parser.NewMarkdownParser().Parse(string(content))
	}

	return appCtx.Manager.BuildPlanLoader().ParseFromPath(ctx, planFile)
}
