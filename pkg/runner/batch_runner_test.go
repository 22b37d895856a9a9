package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shouni/go-comic-director/pkg/config"
	"github.com/shouni/go-comic-director/pkg/domain"
)

type stubStoryRunner struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (s *stubStoryRunner) Run(_ context.Context, plan *domain.StoryPlan, reportPath string) (*ComposeResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, plan.ID)
	s.mu.Unlock()

	if s.fail[plan.ID] {
		return nil, fmt.Errorf("意図的な失敗")
	}
	return &ComposeResult{StoryID: plan.ID, ReportPath: reportPath}, nil
}

func batchPlans(n int) []*domain.StoryPlan {
	plans := make([]*domain.StoryPlan, n)
	for i := range plans {
		plans[i] = &domain.StoryPlan{ID: fmt.Sprintf("story-%02d", i+1)}
	}
	return plans
}

func TestBatchComposeRunner(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateInterval = 0 // テストでは流量制御を無効化

	t.Run("全ストーリーが入力順で結果に並ぶこと", func(t *testing.T) {
		stub := &stubStoryRunner{}
		b := NewBatchComposeRunner(cfg, stub)

		results, err := b.Run(context.Background(), batchPlans(5), "")
		if err != nil {
			t.Fatalf("バッチ実行に失敗しました: %v", err)
		}
		if len(results) != 5 {
			t.Fatalf("結果数が一致しません: %d", len(results))
		}
		for i, res := range results {
			want := fmt.Sprintf("story-%02d", i+1)
			if res.StoryID != want {
				t.Errorf("results[%d] = %s, want %s", i, res.StoryID, want)
			}
		}
	})

	t.Run("出力先指定でストーリーごとのレポートパスが組まれること", func(t *testing.T) {
		stub := &stubStoryRunner{}
		b := NewBatchComposeRunner(cfg, stub)

		results, err := b.Run(context.Background(), batchPlans(2), "gs://bucket/reports/")
		if err != nil {
			t.Fatalf("バッチ実行に失敗しました: %v", err)
		}
		if got := results[0].ReportPath; !strings.HasSuffix(got, "story-01-report.md") {
			t.Errorf("レポートパスにストーリーIDが反映されていません: %s", got)
		}
		if got := results[1].ReportPath; !strings.HasSuffix(got, "story-02-report.md") {
			t.Errorf("レポートパスにストーリーIDが反映されていません: %s", got)
		}
	})

	t.Run("1件の失敗でバッチ全体がエラーになること", func(t *testing.T) {
		stub := &stubStoryRunner{fail: map[string]bool{"story-02": true}}
		b := NewBatchComposeRunner(cfg, stub)

		if _, err := b.Run(context.Background(), batchPlans(3), ""); err == nil {
			t.Error("失敗ストーリーを含むバッチがエラーになりません")
		}
	})

	t.Run("空のバッチはエラーになること", func(t *testing.T) {
		b := NewBatchComposeRunner(cfg, &stubStoryRunner{})
		if _, err := b.Run(context.Background(), nil, ""); err == nil {
			t.Error("空入力でエラーになりません")
		}
	})
}
