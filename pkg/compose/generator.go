package compose

import (
	"github.com/shouni/go-comic-director/pkg/domain"
)

// Context はパネル列全体に関わるグローバル文脈です。
type Context struct {
	Index       int // 対象パネルの列内位置（0始まり）
	TotalPanels int
}

// ruleContext は1パネル分のルール評価に必要な読み取り専用の材料一式です。
type ruleContext struct {
	panel *domain.Panel
	prev  *domain.Panel
	next  *domain.Panel
	seq   Context
}

// rule は (述語, ディレクティブ生成) の1組です。発火しない場合は nil を返します。
// 深い継承階層ではなくフラットな順序付きリストとして評価することで、
// ルール単位の差し替えと検証を容易にしています。
type rule struct {
	name string
	emit func(rc ruleContext) []string
}

// Generator はエンリッチ済みパネルと前後の文脈から構図ディレクティブ列を
// 生成します。出力は入力の純関数で、同じ入力には必ず同じ出力を返します。
type Generator struct {
	rules []rule
}

// NewGenerator は固定のルール表を持つ生成器を返します。
func NewGenerator() *Generator {
	return &Generator{rules: buildRules()}
}

// Generate は1パネル分のディレクティブ列を生成します。
// エンリッチメントを通っていないパネル（必須フィールド未補完）には
// MissingFieldError を返し、推測で埋めることはしません。
func (g *Generator) Generate(panel, prev, next *domain.Panel, seq Context) ([]string, error) {
	if err := requireEnriched(panel); err != nil {
		return nil, err
	}
	if prev != nil {
		if err := requireEnriched(prev); err != nil {
			return nil, err
		}
	}

	rc := ruleContext{panel: panel, prev: prev, next: next, seq: seq}

	var directives []string
	for _, r := range g.rules {
		directives = append(directives, r.emit(rc)...)
	}
	return directives, nil
}

// GenerateAll はパネル列全体を先頭から処理し、パネルごとのディレクティブ列を
// 同じ順序で返します。
func (g *Generator) GenerateAll(seq *domain.Sequence) ([][]string, error) {
	results := make([][]string, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		directives, err := g.Generate(seq.At(i), seq.Prev(i), seq.Next(i), Context{
			Index:       i,
			TotalPanels: seq.Len(),
		})
		if err != nil {
			return nil, err
		}
		results = append(results, directives)
	}
	return results, nil
}

// requireEnriched は生成器が前提とする補完済みフィールドの存在を確認します。
func requireEnriched(p *domain.Panel) error {
	checks := []struct {
		field string
		empty bool
	}{
		{domain.FieldGazeDirection, p.GazeDirection == ""},
		{domain.FieldSubjectPosition, p.SubjectPosition == ""},
		{domain.FieldSpatialRelation, p.SpatialRelation == ""},
		{domain.FieldFocalPoint, p.FocalPoint == ""},
		{domain.FieldShotType, p.ShotType == ""},
		{domain.FieldNarrativeWeight, p.NarrativeWeight == ""},
	}
	for _, c := range checks {
		if c.empty {
			return &domain.MissingFieldError{PanelID: p.ID, Field: c.field}
		}
	}
	return nil
}
