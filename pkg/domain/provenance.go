package domain

// Provenance はエンリッチメントが補完したフィールド（derived）と
// 呼び出し元が明示指定したフィールド（explicit）を区別して記録します。
// バリデータの自動修正は derived なフィールドにしか触れられません。
type Provenance struct {
	derived map[string]map[string]bool
}

// NewProvenance は空の由来記録を生成します。
func NewProvenance() *Provenance {
	return &Provenance{derived: make(map[string]map[string]bool)}
}

// MarkDerived は指定パネルのフィールドがエンリッチメント由来であることを記録します。
func (pv *Provenance) MarkDerived(panelID, field string) {
	fields, ok := pv.derived[panelID]
	if !ok {
		fields = make(map[string]bool)
		pv.derived[panelID] = fields
	}
	fields[field] = true
}

// IsDerived は指定パネルのフィールドがエンリッチメント由来かを返します。
// 記録がなければ明示指定とみなします。
func (pv *Provenance) IsDerived(panelID, field string) bool {
	return pv.derived[panelID][field]
}
