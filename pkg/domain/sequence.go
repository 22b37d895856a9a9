package domain

// StoryPlan は外部のストーリープランナーから受け取る台本全体の構造です。
type StoryPlan struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Panels      []Panel `json:"panels"`
}

// Sequence はストーリー1本分の順序付きパネル列です。
// ID からの O(1) 参照のため、順序付きスライスと id→位置 のインデックスを
// 併せ持ちます（アリーナ + インデックスの構成で、所有ポインタのグラフは作りません）。
type Sequence struct {
	panels []Panel
	index  map[string]int
}

// NewSequence はパネル列を検証してアリーナを構築します。
// 空列、ID の重複、sequence 値の非単調増加は SequenceError になります。
func NewSequence(panels []Panel) (*Sequence, error) {
	if len(panels) == 0 {
		return nil, &SequenceError{Reason: "パネルが1つも含まれていません"}
	}

	index := make(map[string]int, len(panels))
	for i, p := range panels {
		if p.ID == "" {
			return nil, &SequenceError{Reason: "ID が空のパネルが含まれています"}
		}
		if _, dup := index[p.ID]; dup {
			return nil, &SequenceError{PanelID: p.ID, Reason: "パネル ID が重複しています"}
		}
		if i > 0 && panels[i-1].Sequence >= p.Sequence {
			return nil, &SequenceError{PanelID: p.ID, Reason: "sequence 値が厳密増加になっていません"}
		}
		index[p.ID] = i
	}

	// 呼び出し元のスライスと縁を切るため防御的コピーを持ちます。
	owned := make([]Panel, len(panels))
	copy(owned, panels)

	return &Sequence{panels: owned, index: index}, nil
}

// Len はパネル数を返します。
func (s *Sequence) Len() int {
	return len(s.panels)
}

// At は位置 i のパネルへのポインタを返します。範囲外は nil です。
func (s *Sequence) At(i int) *Panel {
	if i < 0 || i >= len(s.panels) {
		return nil
	}
	return &s.panels[i]
}

// ByID は指定 ID のパネルを返します。
func (s *Sequence) ByID(id string) (*Panel, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.panels[i], true
}

// Prev は位置 i の直前のパネルを返します。先頭では nil です。
func (s *Sequence) Prev(i int) *Panel {
	return s.At(i - 1)
}

// Next は位置 i の直後のパネルを返します。末尾では nil です。
func (s *Sequence) Next(i int) *Panel {
	return s.At(i + 1)
}

// Panels は内部スライスのコピーを返します。
func (s *Sequence) Panels() []Panel {
	out := make([]Panel, len(s.panels))
	copy(out, s.panels)
	return out
}
