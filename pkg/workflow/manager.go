package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/remoteio"

	"github.com/shouni/go-comic-director/pkg/config"
	"github.com/shouni/go-comic-director/pkg/domain"
	"github.com/shouni/go-comic-director/pkg/prompts"
	"github.com/shouni/go-comic-director/pkg/runner"
)

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
// 構図エンジンは決定論的なので、同一ストーリーの結果はキャッシュで再利用します。
type Manager struct {
	cfg         config.Config
	reader      remoteio.InputReader
	writer      remoteio.OutputWriter
	chars       domain.CharactersMap
	imagePrompt prompts.ImagePrompt
	resultCache *cache.Cache
}

// ManagerArgs は Manager の初期化に必要な依存関係をまとめたものです。
type ManagerArgs struct {
	Config        config.Config
	Reader        remoteio.InputReader
	Writer        remoteio.OutputWriter
	CharactersMap domain.CharactersMap

	// ImagePrompt が nil の場合は、キャラクター定義を基に新規作成します。
	ImagePrompt prompts.ImagePrompt
}

// New は、設定とキャラクター定義を基に新しい Manager を初期化します。
func New(args ManagerArgs) (*Manager, error) {
	if args.Reader == nil {
		return nil, fmt.Errorf("InputReader は必須です")
	}
	if args.Writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}
	if args.CharactersMap == nil {
		return nil, fmt.Errorf("CharactersMap は必須です")
	}

	iPrompt := args.ImagePrompt
	if iPrompt == nil {
		iPrompt = prompts.NewImagePromptBuilder(args.CharactersMap, args.Config.StyleSuffix)
	}

	return &Manager{
		cfg:         args.Config,
		reader:      args.Reader,
		writer:      args.Writer,
		chars:       args.CharactersMap,
		imagePrompt: iPrompt,
		resultCache: cache.New(defaultCacheExpiration, cacheCleanupInterval),
	}, nil
}

// ComposeStory は、1ストーリーの構図生成をキャッシュ付きで実行します。
// 同一のストーリーIDと出力先の組に対しては、TTL内ならキャッシュ結果を返します。
func (m *Manager) ComposeStory(ctx context.Context, plan *domain.StoryPlan, reportPath string) (*runner.ComposeResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("StoryPlan は必須です")
	}

	key := fmt.Sprintf("%s|%s", plan.ID, reportPath)
	if cached, found := m.resultCache.Get(key); found {
		if res, ok := cached.(*runner.ComposeResult); ok {
			slog.DebugContext(ctx, "キャッシュ済みの構図結果を返します", slog.String("story_id", plan.ID))
			return res, nil
		}
	}

	res, err := m.BuildComposeRunner().Run(ctx, plan, reportPath)
	if err != nil {
		return nil, err
	}

	m.resultCache.Set(key, res, defaultTTL)
	return res, nil
}

// ComposeBatch は、複数ストーリーの構図生成を並列実行します。
func (m *Manager) ComposeBatch(ctx context.Context, plans []*domain.StoryPlan, outputDir string) ([]*runner.ComposeResult, error) {
	return m.BuildBatchRunner().Run(ctx, plans, outputDir)
}
