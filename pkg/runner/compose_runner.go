package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-director/pkg/compose"
	"github.com/shouni/go-comic-director/pkg/config"
	"github.com/shouni/go-comic-director/pkg/director"
	"github.com/shouni/go-comic-director/pkg/domain"
	"github.com/shouni/go-comic-director/pkg/enrich"
	"github.com/shouni/go-comic-director/pkg/prompts"
	"github.com/shouni/go-comic-director/pkg/publisher"
)

// PanelPrompt は、1パネル分の画像生成用プロンプトと seed の組です。
type PanelPrompt struct {
	PanelID      string `json:"panel_id"`
	UserPrompt   string `json:"user_prompt"`
	SystemPrompt string `json:"system_prompt"`
	Seed         int64  `json:"seed"`
}

// ComposeResult は、1ストーリー分の構図生成の成果物です。
type ComposeResult struct {
	StoryID       string             `json:"story_id"`
	Title         string             `json:"title,omitempty"`
	Panels        []domain.Panel     `json:"panels"`
	Directives    [][]string         `json:"directives"`
	Warnings      []director.Warning `json:"warnings"`
	FixedPanelIDs []string           `json:"fixed_panel_ids,omitempty"`
	Prompts       []PanelPrompt      `json:"prompts,omitempty"`
	ReportPath    string             `json:"report_path,omitempty"`
}

// StoryComposeRunner は、1ストーリーに対する補完・検証・構図生成の一連の
// パイプラインを管理します。imagePrompt と pub は任意で、nil の場合は
// プロンプト構築とレポート出力をスキップします。
type StoryComposeRunner struct {
	cfg         config.Config
	enricher    *enrich.Enricher
	checker     *director.ProgressionChecker
	generator   *compose.Generator
	imagePrompt prompts.ImagePrompt
	pub         *publisher.ReportPublisher
}

// NewStoryComposeRunner は、依存関係を注入して初期化します。
func NewStoryComposeRunner(
	cfg config.Config,
	imagePrompt prompts.ImagePrompt,
	pub *publisher.ReportPublisher,
) *StoryComposeRunner {
	return &StoryComposeRunner{
		cfg:         cfg,
		enricher:    enrich.New(cfg),
		checker:     director.NewProgressionChecker(cfg.RepetitionRunLength),
		generator:   compose.NewGenerator(),
		imagePrompt: imagePrompt,
		pub:         pub,
	}
}

// Run は、ストーリープランを受け取り、補完済みシーケンスと構図ディレクティブを生成するのだ。
// reportPath が空でなければ、Markdown レポートも書き出します。
func (r *StoryComposeRunner) Run(ctx context.Context, plan *domain.StoryPlan, reportPath string) (*ComposeResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("StoryPlan は必須です")
	}
	if r.cfg.PanelLimit > 0 && len(plan.Panels) > r.cfg.PanelLimit {
		return nil, fmt.Errorf("パネル数(%d)が上限(%d)を超えています (story: %s)", len(plan.Panels), r.cfg.PanelLimit, plan.ID)
	}

	slog.InfoContext(ctx, "構図パイプラインを開始します",
		slog.String("story_id", plan.ID),
		slog.Int("panels", len(plan.Panels)),
	)

	// 1. フィールド補完（明示値は決して上書きしない）
	seq, prov, err := r.enricher.Enrich(plan.Panels)
	if err != nil {
		return nil, fmt.Errorf("フィールド補完に失敗しました (story: %s): %w", plan.ID, err)
	}

	// 2. ショット進行の検証と、許可されていれば自動修正
	warnings := r.checker.Check(seq)
	var fixed []string
	if r.cfg.AutoFix && len(warnings) > 0 {
		fixed = r.checker.AutoFix(seq, prov)
		if len(fixed) > 0 {
			slog.InfoContext(ctx, "シーン冒頭ショットを自動修正しました",
				slog.Any("panel_ids", fixed),
			)
			warnings = r.checker.Check(seq)
		}
	}
	for _, w := range warnings {
		slog.WarnContext(ctx, "ショット進行の警告",
			slog.String("category", w.Category),
			slog.Any("panel_ids", w.PanelIDs),
			slog.String("message", w.Message),
		)
	}

	// 3. 構図ディレクティブの生成
	directives, err := r.generator.GenerateAll(seq)
	if err != nil {
		return nil, fmt.Errorf("構図ディレクティブの生成に失敗しました (story: %s): %w", plan.ID, err)
	}

	result := &ComposeResult{
		StoryID:       plan.ID,
		Title:         plan.Title,
		Panels:        seq.Panels(),
		Directives:    directives,
		Warnings:      warnings,
		FixedPanelIDs: fixed,
	}

	// 4. 画像生成用プロンプトの構築（任意）
	if r.imagePrompt != nil {
		result.Prompts = r.buildPrompts(seq, directives)
	}

	// 5. レポートの書き出し（任意）。警告は成果物と必ず並記する
	if r.pub != nil && reportPath != "" {
		pubRes, err := r.pub.Publish(ctx, plan, seq, directives, warnings, reportPath)
		if err != nil {
			return nil, err
		}
		result.ReportPath = pubRes.ReportPath
	}

	slog.InfoContext(ctx, "構図パイプラインが完了しました",
		slog.String("story_id", plan.ID),
		slog.Int("warnings", len(warnings)),
	)
	return result, nil
}

func (r *StoryComposeRunner) buildPrompts(seq *domain.Sequence, directives [][]string) []PanelPrompt {
	out := make([]PanelPrompt, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		panel := seq.At(i)
		user, system, seed := r.imagePrompt.BuildPanel(*panel, directives[i])
		out = append(out, PanelPrompt{
			PanelID:      panel.ID,
			UserPrompt:   user,
			SystemPrompt: system,
			Seed:         seed,
		})
	}
	return out
}
