package director

import (
	"fmt"

	"github.com/shouni/go-comic-director/pkg/domain"
)

// 警告カテゴリの定義。下流のレポート層が機械的に分類できるよう固定文字列にします。
const (
	CategoryMonotonousFraming   = "monotonous_framing"
	CategoryMissingEstablishing = "missing_establishing_shot"
	CategoryStaticSpeakerChange = "static_framing_on_speaker_change"
)

// Warning はショット進行の慣習違反1件を表します。致命的エラーではなく、
// あくまでスタイル上の指摘として呼び出し元へ返します。
type Warning struct {
	PanelIDs []string `json:"panel_ids"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
}

// ProgressionChecker はエンリッチ済みパネル列を走査し、
// 映像的なシーケンス慣習の違反を警告として収集します。
// 観測に徹し、Check がパネル列を変更することはありません。
type ProgressionChecker struct {
	runLength int // 同一 shot_type の連続をこのコマ数以上で警告する
}

// NewProgressionChecker は検査器を生成します。runLength が 1 以下の場合は
// 既定の 4 コマを採用します。
func NewProgressionChecker(runLength int) *ProgressionChecker {
	if runLength <= 1 {
		runLength = 4
	}
	return &ProgressionChecker{runLength: runLength}
}

// Check は3つの独立した検査をすべて評価し、見つかった警告を全件返します。
// どの検査も短絡せず、どんな入力でもエラーや panic にはなりません。
func (c *ProgressionChecker) Check(seq *domain.Sequence) []Warning {
	if seq == nil || seq.Len() == 0 {
		return nil
	}

	var warnings []Warning
	warnings = append(warnings, c.checkRepetition(seq)...)
	warnings = append(warnings, c.checkSceneOpeners(seq)...)
	warnings = append(warnings, c.checkSpeakerChanges(seq)...)
	return warnings
}

// checkRepetition は同一 shot_type が runLength コマ以上続く区間を検出します。
func (c *ProgressionChecker) checkRepetition(seq *domain.Sequence) []Warning {
	var warnings []Warning

	runStart := 0
	for i := 1; i <= seq.Len(); i++ {
		if i < seq.Len() && seq.At(i).ShotType == seq.At(runStart).ShotType {
			continue
		}
		if i-runStart >= c.runLength && seq.At(runStart).ShotType != "" {
			start, end := seq.At(runStart), seq.At(i-1)
			warnings = append(warnings, Warning{
				PanelIDs: []string{start.ID, end.ID},
				Category: CategoryMonotonousFraming,
				Message: fmt.Sprintf("パネル %s〜%s で %s が %d コマ連続しています。フレーミングが単調です",
					start.ID, end.ID, start.ShotType, i-runStart),
			})
		}
		runStart = i
	}
	return warnings
}

// checkSceneOpeners は新しいシーンの先頭コマが状況設定ショットで
// 始まっているかを検査します。先頭パネルは常にシーンの開始とみなします。
func (c *ProgressionChecker) checkSceneOpeners(seq *domain.Sequence) []Warning {
	var warnings []Warning

	for i := 0; i < seq.Len(); i++ {
		p := seq.At(i)
		if !isSceneOpener(seq, i) {
			continue
		}
		if !p.ShotType.IsEstablishing() {
			warnings = append(warnings, Warning{
				PanelIDs: []string{p.ID},
				Category: CategoryMissingEstablishing,
				Message: fmt.Sprintf("パネル %s はシーンの開始コマですが、状況設定ショット（wide/extreme_wide）で始まっていません（現在: %s）",
					p.ID, p.ShotType),
			})
		}
	}
	return warnings
}

// checkSpeakerChanges は主話者が切り替わった連続する台詞コマで
// shot_type が据え置きになっていないかを検査します。
func (c *ProgressionChecker) checkSpeakerChanges(seq *domain.Sequence) []Warning {
	var warnings []Warning

	for i := 1; i < seq.Len(); i++ {
		prev, cur := seq.At(i-1), seq.At(i)
		if !prev.HasDialogue() || !cur.HasDialogue() {
			continue
		}
		prevSpeaker, curSpeaker := prev.PrimarySpeaker(), cur.PrimarySpeaker()
		if prevSpeaker == "" || curSpeaker == "" || prevSpeaker == curSpeaker {
			continue
		}
		if prev.ShotType != "" && prev.ShotType == cur.ShotType {
			warnings = append(warnings, Warning{
				PanelIDs: []string{prev.ID, cur.ID},
				Category: CategoryStaticSpeakerChange,
				Message: fmt.Sprintf("パネル %s→%s で話者が %s から %s に切り替わりましたが、フレーミング（%s）が変化していません",
					prev.ID, cur.ID, prevSpeaker, curSpeaker, cur.ShotType),
			})
		}
	}
	return warnings
}

// AutoFix はシーン開始コマの shot_type を wide へ引き上げる安全な自動修正です。
// エンリッチメント由来（derived）の値だけを書き換え、呼び出し元が明示した値には
// 決して触れません。修正したパネル ID の一覧を返します。
func (c *ProgressionChecker) AutoFix(seq *domain.Sequence, prov *domain.Provenance) []string {
	if seq == nil || prov == nil {
		return nil
	}

	var fixed []string
	for i := 0; i < seq.Len(); i++ {
		p := seq.At(i)
		if !isSceneOpener(seq, i) || p.ShotType.IsEstablishing() {
			continue
		}
		if !prov.IsDerived(p.ID, domain.FieldShotType) {
			continue
		}
		p.ShotType = domain.ShotWide
		fixed = append(fixed, p.ID)
	}
	return fixed
}

// isSceneOpener は位置 i のパネルが新しいシーンの先頭かを判定します。
func isSceneOpener(seq *domain.Sequence, i int) bool {
	if i == 0 {
		return true
	}
	return seq.At(i).SpatialRelation != domain.RelationSameLocation
}
