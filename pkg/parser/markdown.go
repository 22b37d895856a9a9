package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-comic-director/pkg/domain"
)

const (
	fieldKeyScene      = "scene"
	fieldKeyAction     = "action"
	fieldKeyMood       = "mood"
	fieldKeyShot       = "shot"
	fieldKeyAngle      = "angle"
	fieldKeyWeight     = "weight"
	fieldKeyCharacters = "characters"
	fieldKeySpeaker    = "speaker"
	fieldKeyText       = "text"
)

// MarkdownParser はMarkdown形式のストーリープランを解析し、構造化データに変換する構造体です。
type MarkdownParser struct {
}

// NewMarkdownParser は MarkdownParser を初期化します。
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse は Markdown テキストを解析して domain.StoryPlan に変換します。
// "## Panel" でコマを区切り、"- key: value" 形式の行をフィールドとして読みます。
// speaker 行と text 行のペアは出現順に台詞エントリになります。
func (p *MarkdownParser) Parse(input string) (*domain.StoryPlan, error) {
	plan := &domain.StoryPlan{}
	lines := strings.Split(input, "\n")

	var currentPanel *domain.Panel
	var pendingSpeaker string

	// 前のパネルを確定して追加するヘルパー関数
	addPreviousPanel := func() {
		if currentPanel != nil && hasContent(currentPanel) {
			plan.Panels = append(plan.Panels, *currentPanel)
		}
		pendingSpeaker = ""
	}

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" {
			continue
		}

		if m := TitleRegex.FindStringSubmatch(trimmedLine); m != nil {
			plan.Title = strings.TrimSpace(m[1])
			continue
		}

		if m := PanelRegex.FindStringSubmatch(trimmedLine); m != nil {
			addPreviousPanel()

			seq := len(plan.Panels) + 1
			id := strings.TrimSpace(m[1])
			if id == "" {
				id = fmt.Sprintf("panel-%03d", seq)
			}
			currentPanel = &domain.Panel{
				ID:       id,
				Sequence: seq,
			}
			continue
		}

		// フィールド行 (- key: value) の解析
		if currentPanel == nil {
			continue
		}
		m := FieldRegex.FindStringSubmatch(trimmedLine)
		if m == nil {
			continue
		}

		key, val := strings.ToLower(m[1]), strings.TrimSpace(m[2])
		switch key {
		case fieldKeyScene:
			currentPanel.Scene = val
		case fieldKeyAction:
			currentPanel.Action = val
		case fieldKeyMood:
			currentPanel.Mood = val
		case fieldKeyShot:
			currentPanel.ShotType = domain.ShotType(val)
		case fieldKeyAngle:
			currentPanel.CameraAngle = domain.CameraAngle(val)
		case fieldKeyWeight:
			currentPanel.NarrativeWeight = domain.NarrativeWeight(val)
		case fieldKeyCharacters:
			currentPanel.CharactersPresent = splitList(val)
		case fieldKeySpeaker:
			// 話者IDはシステム内で一意に扱うため、小文字に正規化する
			pendingSpeaker = strings.ToLower(val)
		case fieldKeyText:
			currentPanel.Dialogue = append(currentPanel.Dialogue, domain.Dialogue{
				Character: pendingSpeaker,
				Text:      val,
			})
			pendingSpeaker = ""
		default:
			slog.Debug("Markdown内に未知のフィールドキーが見つかりました", "key", key)
		}
	}

	// 最後のパネルの追加
	addPreviousPanel()

	if len(plan.Panels) == 0 {
		return nil, fmt.Errorf("有効なパネル情報が見つかりませんでした")
	}

	return plan, nil
}

// splitList はカンマ区切りの値を空白を除去しつつスライスへ変換します。
func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

// hasContent はパネルに有効な情報が含まれているか判定します。
func hasContent(p *domain.Panel) bool {
	return p.Scene != "" || p.Action != "" || len(p.Dialogue) > 0
}
