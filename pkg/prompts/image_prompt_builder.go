package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-comic-director/pkg/domain"
)

// ImagePromptBuilder は、キャラクター情報と構図ディレクティブを考慮して
// AIプロンプトを構築します。
type ImagePromptBuilder struct {
	characterMap  domain.CharactersMap
	defaultSuffix string // "anime style, high quality" 等の共通サフィックス
}

// NewImagePromptBuilder は新しい ImagePromptBuilder を生成します。
func NewImagePromptBuilder(chars domain.CharactersMap, suffix string) *ImagePromptBuilder {
	return &ImagePromptBuilder{
		characterMap:  chars,
		defaultSuffix: suffix,
	}
}

// BuildPanel は、単体パネル用の UserPrompt, SystemPrompt, およびシード値を生成します。
// directives は構図エンジンが生成したディレクティブ列で、先頭側ほど
// 支配的な指示としてそのままプロンプトへ織り込まれます。
func (pb *ImagePromptBuilder) BuildPanel(panel domain.Panel, directives []string) (string, string, int64) {
	// --- 1. System Prompt の構築 ---
	var ss strings.Builder
	ss.WriteString(panelSystemInstruction)
	ss.WriteString("\n\n")
	ss.WriteString(RenderingStyle)
	if pb.defaultSuffix != "" {
		ss.WriteString("\n\n")
		ss.WriteString(fmt.Sprintf("### GLOBAL VISUAL STYLE SUFFIX ###\n%s", pb.defaultSuffix))
	}
	systemPrompt := ss.String()

	// --- 2. キャラクター設定とシーン内容の収集 (User Prompt) ---
	var visualParts []string
	var targetSeed int64

	speaker := panel.PrimarySpeaker()
	if char := pb.characterMap.FindCharacter(speaker); char != nil {
		if len(char.VisualCues) > 0 {
			visualParts = append(visualParts, char.VisualCues...)
		}
		targetSeed = pb.characterMap.SeedFor(speaker)
	} else if speaker != "" {
		targetSeed = pb.characterMap.SeedFor(speaker)
		visualParts = append(visualParts, speaker)
	}

	if panel.Scene != "" {
		visualParts = append(visualParts, panel.Scene)
	}
	if panel.Action != "" {
		visualParts = append(visualParts, panel.Action)
	}

	// 構図ディレクティブの織り込み
	visualParts = append(visualParts, directives...)

	// クオリティ向上タグの追加
	visualParts = append(visualParts, CinematicTags)

	// --- 3. プロンプトのクリーンな結合 ---
	var cleanParts []string
	for _, p := range visualParts {
		if s := strings.TrimSpace(p); s != "" {
			cleanParts = append(cleanParts, s)
		}
	}
	prompt := strings.Join(cleanParts, ", ")

	return prompt, systemPrompt, targetSeed
}
