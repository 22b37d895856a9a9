package compose

import "strings"

// ムードやアクション記述からルール発火を判定するキーワード辞書。
// 部分一致（小文字化した上での contains）で判定します。
var (
	dramaticMoods = []string{"dramatic", "tense", "ominous", "foreboding", "desperate"}

	conflictMoods = []string{"conflict", "tense", "hostile", "angry", "confrontational", "furious"}

	calmMoods = []string{"calm", "quiet", "peaceful", "serene", "melancholy", "wistful"}

	highActionWords = []string{
		"fight", "battle", "explosion", "explodes", "chase", "crash", "attack",
		"strike", "leap", "slam", "charge", "collapse", "shatter",
	}

	revealWords = []string{
		"reveal", "unveil", "unmask", "emerges", "appears", "discover",
		"turns out", "steps out of the shadow",
	}
)

func containsAny(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// isDramaticMood は establishing_dramatic を選ぶべきムードかを判定します。
func isDramaticMood(mood string) bool {
	return containsAny(mood, dramaticMoods)
}

// isConflictMood は対立・衝突を示すムードかを判定します。
func isConflictMood(mood string) bool {
	return containsAny(mood, conflictMoods)
}

// isCalmMood は静かな余韻を示すムードかを判定します。
func isCalmMood(mood string) bool {
	return containsAny(mood, calmMoods)
}

// isHighAction はムードまたはアクション記述が激しい動きを示すかを判定します。
func isHighAction(mood, action string) bool {
	return containsAny(mood, highActionWords) || containsAny(action, highActionWords) ||
		containsAny(mood, []string{"intense", "frantic", "violent"})
}

// hasRevealKeyword はアクション記述に「明かされる」系の語が含まれるかを判定します。
func hasRevealKeyword(action string) bool {
	return containsAny(action, revealWords)
}
