package director

import (
	"github.com/shouni/go-comic-director/pkg/domain"
)

// LayoutManager は吹き出しの配置ゾーンや割り当てルールを管理します。
type LayoutManager struct {
	readingOrder []domain.BubblePosition
}

// NewLayoutManager は読み順（左上→右上→左下→右下）を基本とした
// レイアウトマネージャを生成します。5つ目以降の台詞は中段へ逃がして
// 重なりを避けます。
func NewLayoutManager() *LayoutManager {
	return &LayoutManager{
		readingOrder: []domain.BubblePosition{
			domain.BubbleTopLeft,
			domain.BubbleTopRight,
			domain.BubbleBottomLeft,
			domain.BubbleBottomRight,
			domain.BubbleMiddleLeft,
			domain.BubbleMiddleRight,
			domain.BubbleTopCenter,
			domain.BubbleBottomCenter,
		},
	}
}

// AssignPositions はパネル内の未設定な position_hint を読み順で埋めます。
// characters_present 先頭の話者（リーダー）の台詞を優先的に先頭ゾーンへ置き、
// 明示指定済みのゾーンは再利用しません。設定済みのヒントには触れません。
func (l *LayoutManager) AssignPositions(p *domain.Panel) {
	if len(p.Dialogue) == 0 {
		return
	}

	used := make(map[domain.BubblePosition]bool)
	for _, d := range p.Dialogue {
		if d.PositionHint != "" {
			used[d.PositionHint] = true
		}
	}

	// リーダーの台詞を先に割り当てる順序を作る（元の台詞順は保ったまま）
	leader := p.PrimarySpeaker()
	order := make([]int, 0, len(p.Dialogue))
	for i, d := range p.Dialogue {
		if d.Character == leader {
			order = append(order, i)
		}
	}
	for i, d := range p.Dialogue {
		if d.Character != leader {
			order = append(order, i)
		}
	}

	cursor := 0
	for _, i := range order {
		if p.Dialogue[i].PositionHint != "" {
			continue
		}
		zone := l.nextFreeZone(used, &cursor)
		p.Dialogue[i].PositionHint = zone
		used[zone] = true
	}
}

// nextFreeZone は読み順で次に空いているゾーンを返します。
// 全ゾーンが埋まっている場合は循環して重ねるしかありません。
func (l *LayoutManager) nextFreeZone(used map[domain.BubblePosition]bool, cursor *int) domain.BubblePosition {
	for range l.readingOrder {
		zone := l.readingOrder[*cursor%len(l.readingOrder)]
		*cursor++
		if !used[zone] {
			return zone
		}
	}
	zone := l.readingOrder[*cursor%len(l.readingOrder)]
	*cursor++
	return zone
}
