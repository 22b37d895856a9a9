package publisher

import (
	"strings"
	"testing"

	"github.com/shouni/go-comic-director/pkg/director"
	"github.com/shouni/go-comic-director/pkg/domain"
)

func buildTestSequence(t *testing.T) *domain.Sequence {
	t.Helper()
	seq, err := domain.NewSequence([]domain.Panel{
		{
			ID:              "p1",
			Sequence:        1,
			ShotType:        domain.ShotWide,
			CameraAngle:     domain.AngleEyeLevel,
			NarrativeWeight: domain.WeightMedium,
			SpatialRelation: domain.RelationSameLocation,
			FocalPoint:      domain.FocalCenter,
			GazeDirection:   domain.GazeLeft,
		},
		{
			ID:              "p2",
			Sequence:        2,
			ShotType:        domain.ShotMediumClose,
			CameraAngle:     domain.AngleEyeLevel,
			NarrativeWeight: domain.WeightHigh,
			SpatialRelation: domain.RelationSameLocation,
			FocalPoint:      domain.FocalUpperLeft,
			GazeDirection:   domain.GazeRight,
			Dialogue: []domain.Dialogue{
				{Character: "ずんだもん", Text: "見つけたのだ！", Type: domain.DialogueSpeech, PositionHint: domain.BubbleTopLeft},
			},
		},
	})
	if err != nil {
		t.Fatalf("シーケンスの構築に失敗しました: %v", err)
	}
	return seq
}

func TestBuildReportMarkdown(t *testing.T) {
	pub := NewReportPublisher(nil)
	plan := &domain.StoryPlan{ID: "story-001", Title: "枝豆の冒険"}
	seq := buildTestSequence(t)
	directives := [][]string{
		{"off-center framing, rule-of-thirds composition"},
		{"centered symmetric framing, balanced visual weight"},
	}

	t.Run("タイトルとパネル見出しが含まれること", func(t *testing.T) {
		got := pub.BuildReportMarkdown(plan, seq, directives, nil)
		for _, want := range []string{"# 枝豆の冒険", "## Panel p1", "## Panel p2"} {
			if !strings.Contains(got, want) {
				t.Errorf("レポートに %q が含まれていません:\n%s", want, got)
			}
		}
	})

	t.Run("警告が0件でもセクションが出力されること", func(t *testing.T) {
		got := pub.BuildReportMarkdown(plan, seq, directives, nil)
		if !strings.Contains(got, "## Warnings (0)") {
			t.Errorf("警告セクションが出力されていません:\n%s", got)
		}
		if !strings.Contains(got, "- なし") {
			t.Error("警告0件のプレースホルダがありません")
		}
	})

	t.Run("警告がカテゴリとパネルIDつきで並記されること", func(t *testing.T) {
		warnings := []director.Warning{
			{PanelIDs: []string{"p1", "p2"}, Category: "monotonous_framing", Message: "同一ショットが連続しています"},
		}
		got := pub.BuildReportMarkdown(plan, seq, directives, warnings)
		if !strings.Contains(got, "## Warnings (1)") {
			t.Errorf("警告件数が反映されていません:\n%s", got)
		}
		if !strings.Contains(got, "**monotonous_framing** [p1, p2]") {
			t.Errorf("警告の詳細が出力されていません:\n%s", got)
		}
	})

	t.Run("ディレクティブがパネルごとに出力されること", func(t *testing.T) {
		got := pub.BuildReportMarkdown(plan, seq, directives, nil)
		if !strings.Contains(got, "- directive: off-center framing, rule-of-thirds composition") {
			t.Errorf("p1 のディレクティブがありません:\n%s", got)
		}
		if !strings.Contains(got, "- directive: centered symmetric framing, balanced visual weight") {
			t.Errorf("p2 のディレクティブがありません:\n%s", got)
		}
	})

	t.Run("台詞が話者IDと配置ヒントつきで出力されること", func(t *testing.T) {
		got := pub.BuildReportMarkdown(plan, seq, directives, nil)
		if !strings.Contains(got, "@top_left]: 見つけたのだ！") {
			t.Errorf("台詞の配置ヒントが出力されていません:\n%s", got)
		}
		if !strings.Contains(got, "speaker-") {
			t.Errorf("話者IDが変換されていません:\n%s", got)
		}
	})

	t.Run("タイトルが空ならIDへフォールバックすること", func(t *testing.T) {
		got := pub.BuildReportMarkdown(&domain.StoryPlan{ID: "story-001"}, seq, directives, nil)
		if !strings.Contains(got, "# story-001") {
			t.Errorf("ID フォールバックが機能していません:\n%s", got)
		}
	})
}
