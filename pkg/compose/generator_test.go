package compose

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shouni/go-comic-director/pkg/domain"
)

// enrichedPanel は生成器の前提を満たす補完済みパネルを返します。
func enrichedPanel(id string, seq int) domain.Panel {
	return domain.Panel{
		ID:              id,
		Sequence:        seq,
		Scene:           "harbor warehouse",
		Action:          "walking forward",
		ShotType:        domain.ShotMedium,
		CameraAngle:     domain.AngleEyeLevel,
		NarrativeWeight: domain.WeightMedium,
		GazeDirection:   domain.GazeLeft,
		SubjectPosition: domain.PositionLeftThird,
		SpatialRelation: domain.RelationSameLocation,
		FocalPoint:      domain.FocalLowerLeft,
	}
}

func containsDirective(directives []string, substr string) bool {
	for _, d := range directives {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	t.Run("同じ入力からは必ず同一の出力が得られること", func(t *testing.T) {
		p := enrichedPanel("p2", 2)
		p.Dialogue = []domain.Dialogue{
			{Character: "kai", Text: "ここか", Type: domain.DialogueSpeech, PositionHint: domain.BubbleTopLeft},
			{Character: "mira", Text: "ええ", Type: domain.DialogueSpeech, PositionHint: domain.BubbleTopRight},
		}
		prev := enrichedPanel("p1", 1)

		first, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		second, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("出力が揺れています。\n1回目: %v\n2回目: %v", first, second)
		}
		if len(first) == 0 {
			t.Error("ディレクティブ列が空です")
		}
	})

	t.Run("未補完のパネルには MissingFieldError が返ること", func(t *testing.T) {
		p := enrichedPanel("p1", 1)
		p.FocalPoint = ""
		_, err := gen.Generate(&p, nil, nil, Context{Index: 0, TotalPanels: 1})

		var missingErr *domain.MissingFieldError
		if !errors.As(err, &missingErr) {
			t.Fatalf("MissingFieldError が返りませんでした: %v", err)
		}
		if missingErr.PanelID != "p1" || missingErr.Field != domain.FieldFocalPoint {
			t.Errorf("エラーに違反フィールドが含まれていません: %+v", missingErr)
		}
	})

	t.Run("シーン開始コマには establishing テンプレートが入ること", func(t *testing.T) {
		p := enrichedPanel("p1", 1)
		p.SpatialRelation = domain.RelationCutTo
		directives, err := gen.Generate(&p, nil, nil, Context{Index: 0, TotalPanels: 3})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if directives[0] != mustTemplate(TemplateEstablishing) {
			t.Errorf("先頭が establishing ではありません: %v", directives)
		}
	})

	t.Run("ドラマチックなムードのシーン開始は劇的な設定ショットになること", func(t *testing.T) {
		p := enrichedPanel("p1", 1)
		p.Mood = "tense"
		directives, err := gen.Generate(&p, nil, nil, Context{Index: 0, TotalPanels: 1})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if directives[0] != mustTemplate(TemplateEstablishingDramatic) {
			t.Errorf("establishing_dramatic が選ばれていません: %v", directives)
		}
	})

	t.Run("通常コマはオフセンター構図が既定になること", func(t *testing.T) {
		p := enrichedPanel("p2", 2)
		prev := enrichedPanel("p1", 1)
		directives, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if directives[0] != directiveAntiCenter {
			t.Errorf("既定のオフセンター構図が選ばれていません: %v", directives)
		}
	})

	t.Run("splash は列内の位置によらず中央対称ディレクティブを受けること", func(t *testing.T) {
		for _, openers := range []bool{true, false} {
			p := enrichedPanel("px", 5)
			p.NarrativeWeight = domain.WeightSplash
			var prev *domain.Panel
			if !openers {
				pp := enrichedPanel("p4", 4)
				prev = &pp
			} else {
				p.SpatialRelation = domain.RelationCutTo
			}

			directives, err := gen.Generate(&p, prev, nil, Context{Index: 4, TotalPanels: 6})
			if err != nil {
				t.Fatalf("生成に失敗しました: %v", err)
			}
			if !containsDirective(directives, "centered symmetric") {
				t.Errorf("splash に中央対称ディレクティブがありません (opener=%v): %v", openers, directives)
			}
			if !containsDirective(directives, "splash") {
				t.Errorf("splash 全面処理テンプレートがありません: %v", directives)
			}
		}
	})

	t.Run("composition_override は splash の例外にも優先すること", func(t *testing.T) {
		p := enrichedPanel("p2", 2)
		p.NarrativeWeight = domain.WeightSplash
		p.CompositionOverride = domain.OverrideDynamic
		prev := enrichedPanel("p1", 1)

		directives, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if directives[0] != directiveDynamic {
			t.Errorf("override が効いていません: %v", directives)
		}
	})

	t.Run("2人の話者の会話コマは話者ペアの変種テンプレートを受けること", func(t *testing.T) {
		p := enrichedPanel("p2", 2)
		p.Dialogue = []domain.Dialogue{
			{Character: "kai", Text: "来たか", Type: domain.DialogueSpeech, PositionHint: domain.BubbleTopLeft},
			{Character: "mira", Text: "当然よ", Type: domain.DialogueSpeech, PositionHint: domain.BubbleTopRight},
		}
		prev := enrichedPanel("p1", 1)

		directives, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}

		wantA := domain.PairVariant("kai", "mira") == 0
		hasA := containsDirective(directives, "favoring the left speaker")
		hasB := containsDirective(directives, "favoring the right speaker")
		if wantA && !hasA {
			t.Errorf("speaker_a 変種が選ばれていません: %v", directives)
		}
		if !wantA && !hasB {
			t.Errorf("speaker_b 変種が選ばれていません: %v", directives)
		}
		if hasA && hasB {
			t.Errorf("変種が同時に出ています: %v", directives)
		}
	})

	t.Run("激しいアクションの直後のコマはリアクション構図を受けること", func(t *testing.T) {
		prev := enrichedPanel("p1", 1)
		prev.Action = "the bridge explodes behind them"
		p := enrichedPanel("p2", 2)

		directives, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if !containsDirective(directives, "reaction shot") {
			t.Errorf("リアクション構図がありません: %v", directives)
		}
	})

	t.Run("引きのコマの直後には寄りのフレーミングが促されること", func(t *testing.T) {
		prev := enrichedPanel("p1", 1)
		prev.ShotType = domain.ShotWide
		p := enrichedPanel("p2", 2)

		directives, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if !containsDirective(directives, "cut in closer") {
			t.Errorf("寄りの促しがありません: %v", directives)
		}
	})

	t.Run("reveal キーワードで開示構図テンプレートが追加されること", func(t *testing.T) {
		p := enrichedPanel("p2", 2)
		p.Action = "the stranger finally reveals his face"
		prev := enrichedPanel("p1", 1)

		directives, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if !containsDirective(directives, "dramatic reveal") {
			t.Errorf("開示構図がありません: %v", directives)
		}
	})

	t.Run("narrative_weight の上昇でクライマックスへの積み上げが入ること", func(t *testing.T) {
		prev := enrichedPanel("p1", 1)
		prev.NarrativeWeight = domain.WeightMedium
		p := enrichedPanel("p2", 2)
		p.NarrativeWeight = domain.WeightHigh

		directives, err := gen.Generate(&p, &prev, nil, Context{Index: 1, TotalPanels: 2})
		if err != nil {
			t.Fatalf("生成に失敗しました: %v", err)
		}
		if !containsDirective(directives, "rising tension") {
			t.Errorf("積み上げディレクティブがありません: %v", directives)
		}
		if !containsDirective(directives, "climactic composition") {
			t.Errorf("クライマックス構図がありません: %v", directives)
		}
	})
}

func TestTemplateCatalog(t *testing.T) {
	t.Run("カタログに15種類以上のテンプレートが登録されていること", func(t *testing.T) {
		if n := len(TemplateNames()); n < 15 {
			t.Errorf("テンプレートが不足しています: %d 種類", n)
		}
	})

	t.Run("既知の名前で本文が引けること", func(t *testing.T) {
		for _, name := range []string{
			TemplateEstablishing, TemplateSpeakerA, TemplateSpeakerB,
			TemplateReaction, TemplateClimaxSplash, TemplateFlashback,
		} {
			text, ok := Template(name)
			if !ok || text == "" {
				t.Errorf("テンプレート %s が引けません", name)
			}
		}
	})

	t.Run("未知の名前は false を返すこと", func(t *testing.T) {
		if _, ok := Template("genga_matome"); ok {
			t.Error("未知の名前でテンプレートが引けてしまいました")
		}
	})
}
