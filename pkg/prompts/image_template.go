package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-comic-director/pkg/domain"
)

const (
	// CinematicTags クオリティ向上のための共通タグ
	CinematicTags = "cinematic composition, high resolution, sharp focus, 8k"

	// NegativePrompt 画像生成時に除外したい要素の定義
	NegativePrompt = "speech bubble, dialogue balloon, text, alphabet, letters, words, signatures, watermark, username, low quality, distorted, bad anatomy"

	// RenderingStyle は共通の画風を定義します。
	RenderingStyle = `### GLOBAL VISUAL STYLE ###
- RENDERING: Sharp clean lineart, vibrant colors, no blurring, high contrast, cinematic manga lighting.`

	// panelSystemInstruction は単体パネルを1枚の完成画として描かせる役割定義です。
	panelSystemInstruction = "You are a professional anime illustrator. Create a single high-quality cinematic scene."
)

// BuildCharacterIdentitySection は全登場キャラの視覚的特徴をマスター定義として出力します。
func BuildCharacterIdentitySection(chars domain.CharactersMap) string {
	if len(chars) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("### CHARACTER MASTER DEFINITIONS (STRICT IDENTITY) ###\n")
	for _, id := range chars.SortedIDs() {
		char := chars[id]
		cues := "None"
		if len(char.VisualCues) > 0 {
			cues = strings.Join(char.VisualCues, ", ")
		}
		sb.WriteString(fmt.Sprintf("- SUBJECT [%s]: VISUAL_FEATURES: {%s}\n", char.Name, cues))
	}
	sb.WriteString("\n")
	return sb.String()
}
