package runner

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/shouni/go-comic-director/pkg/asset"
	"github.com/shouni/go-comic-director/pkg/config"
	"github.com/shouni/go-comic-director/pkg/domain"
)

const defaultRateBurst = 2

// StoryRunner は、1ストーリー分の構図パイプラインを実行する契約です。
type StoryRunner interface {
	Run(ctx context.Context, plan *domain.StoryPlan, reportPath string) (*ComposeResult, error)
}

// BatchComposeRunner は、複数ストーリーの構図生成を並列に管理するのだ。
// レートリミッターで同時実行の流量を制御します。
type BatchComposeRunner struct {
	cfg     config.Config
	story   StoryRunner
	limiter *rate.Limiter
}

// NewBatchComposeRunner は、依存関係を注入して初期化します。
func NewBatchComposeRunner(cfg config.Config, story StoryRunner) *BatchComposeRunner {
	limit := rate.Inf
	if cfg.RateInterval > 0 {
		limit = rate.Every(cfg.RateInterval)
	}
	return &BatchComposeRunner{
		cfg:     cfg,
		story:   story,
		limiter: rate.NewLimiter(limit, defaultRateBurst),
	}
}

// Run は、各ストーリーを並列に処理し、入力順を保った結果を返します。
// outputDir が空でなければ、ストーリーごとのレポートパスを組み立てて渡します。
func (r *BatchComposeRunner) Run(ctx context.Context, plans []*domain.StoryPlan, outputDir string) ([]*ComposeResult, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("処理対象のストーリーがありません")
	}

	slog.InfoContext(ctx, "バッチ構図生成を開始します", slog.Int("stories", len(plans)))

	results := make([]*ComposeResult, len(plans))
	g, gCtx := errgroup.WithContext(ctx)

	for i, plan := range plans {
		g.Go(func() error {
			if err := r.limiter.Wait(gCtx); err != nil {
				return fmt.Errorf("レート制限の待機に失敗しました: %w", err)
			}

			reportPath := ""
			if outputDir != "" {
				var err error
				reportPath, err = asset.ResolveReportPath(outputDir, plan.ID)
				if err != nil {
					return fmt.Errorf("レポートパスの解決に失敗しました (story: %s): %w", plan.ID, err)
				}
			}

			res, err := r.story.Run(gCtx, plan, reportPath)
			if err != nil {
				return fmt.Errorf("ストーリー %s の処理に失敗しました: %w", plan.ID, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "バッチ構図生成が完了しました", slog.Int("stories", len(results)))
	return results, nil
}
