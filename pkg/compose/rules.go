package compose

import (
	"github.com/shouni/go-comic-director/pkg/domain"
)

// フレーミング以外の素のディレクティブ断片。テンプレートカタログとは別の、
// 状況に応じて組み立てる定型句です。
const (
	directiveAntiCenter = "off-center framing, rule-of-thirds composition"
	directiveCentered   = "centered symmetric framing, balanced visual weight"
	directiveDynamic    = "off-center framing, rule-of-thirds composition, dynamic diagonal balance"
	directiveEnvReuse   = "same location as previous panel, maintain background and lighting continuity"
	directiveTighter    = "tighter framing than previous panel, cut in closer"
	directiveWider      = "wider framing than previous panel, pull back"
)

// buildRules は生成ルールの固定順序リストを構築します。
// 先頭のフレーミングカテゴリは内部で first-match-wins、以降のカテゴリは
// 該当するものがすべて追記されます。
func buildRules() []rule {
	return []rule{
		{name: "framing", emit: emitFraming},
		{name: "focal_point", emit: emitFocalPoint},
		{name: "gaze", emit: emitGaze},
		{name: "two_speaker", emit: emitTwoSpeaker},
		{name: "reaction", emit: emitReaction},
		{name: "spatial_relation", emit: emitSpatialRelation},
		{name: "escalation", emit: emitEscalation},
		{name: "shot_progression", emit: emitShotProgression},
		{name: "reveal", emit: emitReveal},
		{name: "intensity", emit: emitIntensity},
	}
}

// isSceneOpener は対象パネルが新しいシーンの先頭かを判定します。
func (rc ruleContext) isSceneOpener() bool {
	if rc.prev == nil {
		return true
	}
	return rc.panel.SpatialRelation != domain.RelationSameLocation
}

// emitFraming はフレーミングの基本方針を1つだけ選びます。
// シーン開始コマは設定ショット、それ以外は原則オフセンター構図で、
// splash・対立構図・2话者の会話は例外的に中央対称へ寄せます。
// 明示の composition_override は splash を含む全ヒューリスティクスに優先します。
func emitFraming(rc ruleContext) []string {
	p := rc.panel

	if rc.isSceneOpener() {
		if isDramaticMood(p.Mood) {
			return []string{mustTemplate(TemplateEstablishingDramatic)}
		}
		return []string{mustTemplate(TemplateEstablishing)}
	}

	switch p.CompositionOverride {
	case domain.OverrideSymmetric:
		return []string{directiveCentered}
	case domain.OverrideDynamic:
		return []string{directiveDynamic}
	}

	if p.NarrativeWeight == domain.WeightSplash {
		return []string{directiveCentered}
	}
	if len(p.CharactersPresent) == 2 && isConflictMood(p.Mood) {
		return []string{mustTemplate(TemplateConfrontation)}
	}
	if len(p.DistinctSpeakers()) == 2 {
		return []string{directiveCentered}
	}

	return []string{directiveAntiCenter}
}

// focalPhrases は focal_point の列挙値を下流プロンプト向けの定型句に引きます。
var focalPhrases = map[domain.FocalPoint]string{
	domain.FocalUpperLeft:  "focal point in the upper left of frame",
	domain.FocalUpperRight: "focal point in the upper right of frame",
	domain.FocalLowerLeft:  "focal point in the lower left of frame",
	domain.FocalLowerRight: "focal point in the lower right of frame",
	domain.FocalCenter:     "focal point at the center of frame",
}

func emitFocalPoint(rc ruleContext) []string {
	if phrase, ok := focalPhrases[rc.panel.FocalPoint]; ok {
		return []string{phrase}
	}
	return nil
}

var gazePhrases = map[domain.GazeDirection]string{
	domain.GazeLeft:   "subject gaze directed frame-left",
	domain.GazeRight:  "subject gaze directed frame-right",
	domain.GazeCenter: "subject gaze level toward viewer",
	domain.GazeUp:     "subject gaze lifted upward",
	domain.GazeDown:   "subject gaze cast downward",
}

// emitGaze は視線方向ディレクティブを出します。直前コマと話者が異なる
// 会話の応酬では、前コマの視線の反対側を向かせてアイラインを合わせます。
func emitGaze(rc ruleContext) []string {
	gaze := rc.panel.GazeDirection

	if rc.prev != nil && rc.prev.HasDialogue() && rc.panel.HasDialogue() {
		prevSpeaker, curSpeaker := rc.prev.PrimarySpeaker(), rc.panel.PrimarySpeaker()
		if prevSpeaker != "" && curSpeaker != "" && prevSpeaker != curSpeaker {
			if rc.prev.GazeDirection == domain.GazeLeft || rc.prev.GazeDirection == domain.GazeRight {
				gaze = rc.prev.GazeDirection.Opposite()
			}
		}
	}

	if phrase, ok := gazePhrases[gaze]; ok {
		return []string{phrase}
	}
	return nil
}

// emitTwoSpeaker はちょうど2人の話者が交わす会話コマに、話者ペアの
// ハッシュで決まる肩越し構図の変種を追加します。
func emitTwoSpeaker(rc ruleContext) []string {
	speakers := rc.panel.DistinctSpeakers()
	if len(speakers) != 2 {
		return nil
	}
	if domain.PairVariant(speakers[0], speakers[1]) == 0 {
		return []string{mustTemplate(TemplateSpeakerA)}
	}
	return []string{mustTemplate(TemplateSpeakerB)}
}

// emitReaction は激しいアクションの直後のコマにリアクション構図を追加します。
// 引きの構図なら群衆リアクション、静かなムードなら余韻の型も重ねます。
func emitReaction(rc ruleContext) []string {
	if rc.prev == nil || !isHighAction(rc.prev.Mood, rc.prev.Action) {
		return nil
	}

	var out []string
	if rc.panel.ShotType.IsEstablishing() {
		out = append(out, mustTemplate(TemplateReactionWide))
	} else {
		out = append(out, mustTemplate(TemplateReaction))
	}
	if isCalmMood(rc.panel.Mood) {
		out = append(out, mustTemplate(TemplateActionAftermath))
	}
	return out
}

// emitSpatialRelation は直前コマとの空間関係に応じた継続・転換の型を追加します。
func emitSpatialRelation(rc ruleContext) []string {
	if rc.prev == nil {
		return nil
	}
	switch rc.panel.SpatialRelation {
	case domain.RelationSameLocation:
		return []string{directiveEnvReuse}
	case domain.RelationTimeSkip:
		return []string{mustTemplate(TemplateTimeSkip)}
	case domain.RelationFlashback:
		return []string{mustTemplate(TemplateFlashback)}
	case domain.RelationParallel:
		return []string{mustTemplate(TemplateParallel)}
	}
	return nil
}

// emitEscalation は narrative_weight の上昇にクライマックスへの積み上げを、
// splash には常にスプラッシュ全面処理を追加します。
func emitEscalation(rc ruleContext) []string {
	var out []string

	if rc.prev != nil && rc.panel.NarrativeWeight.Rank() > rc.prev.NarrativeWeight.Rank() {
		out = append(out, mustTemplate(TemplateActionBuildup))
		if rc.panel.NarrativeWeight == domain.WeightHigh {
			out = append(out, mustTemplate(TemplateClimax))
		}
	}
	if rc.panel.NarrativeWeight == domain.WeightSplash {
		out = append(out, mustTemplate(TemplateClimaxSplash))
	}
	return out
}

// emitShotProgression は直前コマとの緩急をつけるフレーミングのヒントです。
// 引きの後は寄りを、寄りの後は引きを促して交互のリズムを作ります。
func emitShotProgression(rc ruleContext) []string {
	if rc.prev == nil {
		return nil
	}
	switch rc.prev.ShotType {
	case domain.ShotWide, domain.ShotExtremeWide:
		return []string{directiveTighter}
	case domain.ShotCloseUp, domain.ShotExtremeClose:
		return []string{directiveWider}
	}
	return nil
}

// emitReveal はアクション記述に「明かされる」系の語があれば開示構図を追加します。
func emitReveal(rc ruleContext) []string {
	if hasRevealKeyword(rc.panel.Action) {
		return []string{mustTemplate(TemplateReveal)}
	}
	return nil
}

// emitIntensity は対象コマ自身の強度に応じた型を追加します。
// 激しいアクションには動きのピーク、台詞のない静かなコマには観照の型です。
func emitIntensity(rc ruleContext) []string {
	p := rc.panel
	if isHighAction(p.Mood, p.Action) {
		return []string{mustTemplate(TemplateActionPeak)}
	}
	if !p.HasDialogue() && isCalmMood(p.Mood) {
		return []string{mustTemplate(TemplateContemplation)}
	}
	return nil
}
