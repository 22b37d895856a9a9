package prompts

import (
	"strings"
	"testing"

	"github.com/shouni/go-comic-director/pkg/domain"
)

func TestImagePromptBuilder_BuildPanel(t *testing.T) {
	chars := domain.CharactersMap{
		"kai": {ID: "kai", Name: "カイ", VisualCues: []string{"silver hair", "long coat"}, Seed: 4242},
	}
	builder := NewImagePromptBuilder(chars, "anime style")

	panel := domain.Panel{
		ID:                "p1",
		Sequence:          1,
		Scene:             "rainy rooftop",
		Action:            "looking over the city",
		CharactersPresent: []string{"kai"},
	}
	directives := []string{
		"wide establishing shot, full environment visible, characters small in frame",
		"focal point in the lower left of frame",
	}

	t.Run("登録キャラクターのDNAとシードが継承されること", func(t *testing.T) {
		prompt, system, seed := builder.BuildPanel(panel, directives)

		if !strings.Contains(prompt, "silver hair") {
			t.Errorf("視覚的特徴が含まれていません: %s", prompt)
		}
		if seed != 4242 {
			t.Errorf("期待値 4242, 実際の値 %d", seed)
		}
		if !strings.Contains(system, "GLOBAL VISUAL STYLE SUFFIX") {
			t.Errorf("サフィックスセクションがありません: %s", system)
		}
	})

	t.Run("ディレクティブがプロンプトに織り込まれること", func(t *testing.T) {
		prompt, _, _ := builder.BuildPanel(panel, directives)
		for _, d := range directives {
			if !strings.Contains(prompt, d) {
				t.Errorf("ディレクティブが欠落しています: %s", d)
			}
		}
		if !strings.Contains(prompt, CinematicTags) {
			t.Error("共通クオリティタグがありません")
		}
	})

	t.Run("未登録の話者は名前から決定論的なシードが生成されること", func(t *testing.T) {
		unknown := panel
		unknown.CharactersPresent = []string{"stranger"}

		_, _, seed1 := builder.BuildPanel(unknown, directives)
		_, _, seed2 := builder.BuildPanel(unknown, directives)
		if seed1 == 0 {
			t.Error("シードが0のままです")
		}
		if seed1 != seed2 {
			t.Error("同じ話者から異なるシードが生成されました")
		}
	})
}

func TestBuildCharacterIdentitySection(t *testing.T) {
	t.Run("キャラクターが空なら空文字を返すこと", func(t *testing.T) {
		if s := BuildCharacterIdentitySection(nil); s != "" {
			t.Errorf("空であるべきです: %q", s)
		}
	})

	t.Run("走査順が安定していること", func(t *testing.T) {
		chars := domain.CharactersMap{
			"kai":  {ID: "kai", Name: "カイ", VisualCues: []string{"silver hair"}},
			"mira": {ID: "mira", Name: "ミラ", VisualCues: []string{"red scarf"}},
		}
		if BuildCharacterIdentitySection(chars) != BuildCharacterIdentitySection(chars) {
			t.Error("出力が呼び出しごとに揺れています")
		}
	})
}
