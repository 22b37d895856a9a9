package domain

import "testing"

func TestStableHash(t *testing.T) {
	t.Run("同じ入力からは常に同じ値が得られること", func(t *testing.T) {
		h1 := StableHash("kai", "mira")
		h2 := StableHash("kai", "mira")
		if h1 != h2 {
			t.Errorf("決定論的ではありません: %d != %d", h1, h2)
		}
	})

	t.Run("大文字小文字の揺れを吸収すること", func(t *testing.T) {
		if StableHash("Kai") != StableHash("kai") {
			t.Error("大文字小文字で異なるハッシュが生成されました")
		}
	})

	t.Run("常に正の値であること", func(t *testing.T) {
		for _, s := range []string{"", "a", "ずんだもん", "a-very-long-identifier"} {
			if int32(StableHash(s)) < 0 {
				t.Errorf("負の値が生成されました: %q", s)
			}
		}
	})
}

func TestGazeTendency(t *testing.T) {
	t.Run("同じキャラクターは常に同じ傾向を持つこと", func(t *testing.T) {
		if GazeTendency("kai") != GazeTendency("kai") {
			t.Error("同一キャラクターの視線傾向が揺れています")
		}
	})

	t.Run("結果は左右いずれかであること", func(t *testing.T) {
		g := GazeTendency("mira")
		if g != GazeLeft && g != GazeRight {
			t.Errorf("想定外の視線方向です: %s", g)
		}
	})
}

func TestPairVariant(t *testing.T) {
	t.Run("話者ペアの並び順に依存しないこと", func(t *testing.T) {
		if PairVariant("kai", "mira") != PairVariant("mira", "kai") {
			t.Error("ペアの順序で結果が変わっています")
		}
	})
}

func TestGazeDirection_Opposite(t *testing.T) {
	cases := map[GazeDirection]GazeDirection{
		GazeLeft:   GazeRight,
		GazeRight:  GazeLeft,
		GazeUp:     GazeUp,
		GazeCenter: GazeCenter,
	}
	for in, want := range cases {
		if got := in.Opposite(); got != want {
			t.Errorf("%s の反転: 期待値 %s, 実際の値 %s", in, want, got)
		}
	}
}
