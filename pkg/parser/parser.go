package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-director/pkg/domain"
	"github.com/shouni/go-remote-io/remoteio"
)

// Parser はストーリープランを解析するためのインターフェースを定義します。
type Parser interface {
	ParseFromPath(ctx context.Context, fullPath string) (*domain.StoryPlan, error)
}

// StoryPlanParser は JSON 形式のストーリープランを解析する構造体です。
type StoryPlanParser struct {
	reader remoteio.InputReader
}

// NewStoryPlanParser は新しい StoryPlanParser インスタンスを生成します。
func NewStoryPlanParser(r remoteio.InputReader) *StoryPlanParser {
	return &StoryPlanParser{reader: r}
}

// ParseFromPath は指定された GCS URI やローカルファイルパスなどから
// コンテンツを読み込み、解析して domain.StoryPlan を返します。
func (p *StoryPlanParser) ParseFromPath(ctx context.Context, planFile string) (*domain.StoryPlan, error) {
	slog.InfoContext(ctx, "ストーリープランを読み込んでいます", "path", planFile)
	rc, err := p.reader.Open(ctx, planFile)
	if err != nil {
		return nil, fmt.Errorf("ストーリープランのオープンに失敗しました (%s): %w", planFile, err)
	}
	defer rc.Close()

	plan := &domain.StoryPlan{}
	if err := json.NewDecoder(rc).Decode(plan); err != nil {
		return nil, fmt.Errorf("ストーリープランJSONのパースに失敗しました: %w", err)
	}

	if len(plan.Panels) == 0 {
		return nil, fmt.Errorf("ストーリープランにパネルが含まれていません (%s)", planFile)
	}

	return plan, nil
}
