package director

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/shouni/go-comic-director/pkg/domain"
)

// StyleManager は話者の識別や吹き出しの種類（叫び等）を管理します。
type StyleManager struct{}

func NewStyleManager() *StyleManager {
	return &StyleManager{}
}

// ResolveSpeakerID は話者名から CSS 安全なハッシュ ID を生成します。
// 下流の吹き出しレイアウトエンジンがスタイルのキーとして使います。
func (s *StyleManager) ResolveSpeakerID(name string) string {
	if name == "" {
		return "speaker-narration"
	}
	h := sha256.New()
	h.Write([]byte(strings.ToLower(name)))
	return "speaker-" + hex.EncodeToString(h.Sum(nil))[:10]
}

// ResolveDialogueType は台詞本文に含まれるメタタグから発話形式を判定します。
// タグがなければ、話者なしはナレーション、話者ありは通常の speech とします。
func (s *StyleManager) ResolveDialogueType(d domain.Dialogue) domain.DialogueType {
	switch {
	case strings.Contains(d.Text, "[shout]"):
		return domain.DialogueShout
	case strings.Contains(d.Text, "[thought]"):
		return domain.DialogueThought
	case strings.Contains(d.Text, "[whisper]"):
		return domain.DialogueWhisper
	case strings.Contains(d.Text, "[sfx]"):
		return domain.DialogueSFX
	case strings.Contains(d.Text, "[caption]"):
		return domain.DialogueCaption
	case d.Character == "":
		return domain.DialogueNarration
	default:
		return domain.DialogueSpeech
	}
}
