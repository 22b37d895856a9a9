package enrich

import (
	"strings"
	"unicode"
)

// stopwords は場所の同一性判定に寄与しない言い回しを除外するための辞書です。
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "over": {}, "under": {}, "into": {},
	"from": {}, "near": {}, "inside": {}, "outside": {}, "around": {},
	"very": {}, "some": {}, "this": {}, "that": {}, "there": {},
}

// SceneOverlap は2つのシーン記述の有意語集合の Jaccard 類似度を返します。
// 完全一致の判定ではなく、「同じ場所を描いていそうか」を測る軽量な
// ヒューリスティクスです。どちらかが空なら 0 です。
func SceneOverlap(a, b string) float64 {
	setA := significantWords(a)
	setB := significantWords(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// significantWords はシーン記述を小文字化して語に分割し、
// 短すぎる語とストップワードを落とした集合を返します。
func significantWords(scene string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(scene), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		// ASCII の2文字以下は冠詞や前置詞の断片なので捨てる。
		// 非ASCII（日本語等）はバイト長が嵩むためこの条件に掛からず、短くても保持される
		if len(f) <= 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		words[f] = struct{}{}
	}
	return words
}
