package workflow

import (
	"context"
	"time"

	"github.com/shouni/go-comic-director/pkg/domain"
	"github.com/shouni/go-comic-director/pkg/runner"
)

const (
	defaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = 15 * time.Minute
	defaultTTL             = 5 * time.Minute
)

// Workflow は、構図ワークフローの各工程を担当する Runner を構築するための
// インターフェースを定義します。
type Workflow interface {
	BuildComposeRunner() ComposeRunner
	BuildBatchRunner() BatchRunner
	BuildPlanLoader() PlanLoader
}

// ComposeRunner は、1ストーリーの補完・検証・構図生成を実行する責務を持ちます。
type ComposeRunner interface {
	Run(ctx context.Context, plan *domain.StoryPlan, reportPath string) (*runner.ComposeResult, error)
}

// BatchRunner は、複数ストーリーの構図生成を並列実行する責務を持ちます。
type BatchRunner interface {
	Run(ctx context.Context, plans []*domain.StoryPlan, outputDir string) ([]*runner.ComposeResult, error)
}

// PlanLoader は、ローカルまたはリモートのパスからストーリープランを読み込む責務を持ちます。
type PlanLoader interface {
	ParseFromPath(ctx context.Context, planFile string) (*domain.StoryPlan, error)
}
