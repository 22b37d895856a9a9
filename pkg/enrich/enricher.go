package enrich

import (
	"log/slog"

	"github.com/shouni/go-comic-director/pkg/config"
	"github.com/shouni/go-comic-director/pkg/director"
	"github.com/shouni/go-comic-director/pkg/domain"
)

// Enricher は順序付きパネル列の未設定な構図フィールドを決定論的に補完します。
// 呼び出し元が明示的に設定したフィールドには決して触れないため、
// 完全指定済みのパネル列に対しては恒等変換になります。
type Enricher struct {
	cfg    config.Config
	layout *director.LayoutManager
	style  *director.StyleManager
}

// New は設定を束ねたエンリッチャーを生成します。
func New(cfg config.Config) *Enricher {
	if cfg.SceneOverlapThreshold <= 0 {
		cfg.SceneOverlapThreshold = config.DefaultSceneOverlapThreshold
	}
	return &Enricher{
		cfg:    cfg,
		layout: director.NewLayoutManager(),
		style:  director.NewStyleManager(),
	}
}

// Enrich はパネル列を検証し、未設定フィールドをすべて補完したアリーナと、
// どのフィールドが補完由来かを示す Provenance を返します。
// 明示値の列挙違反・参照切れ・列の不整合は型付きエラーとして実行を止めます。
func (e *Enricher) Enrich(panels []domain.Panel) (*domain.Sequence, *domain.Provenance, error) {
	if err := domain.Panels(panels).ValidateEnums(); err != nil {
		return nil, nil, err
	}

	seq, err := domain.NewSequence(panels)
	if err != nil {
		return nil, nil, err
	}

	// 明示的な connects_to の参照整合性はフィールド補完より先に確認します
	for i := 0; i < seq.Len(); i++ {
		p := seq.At(i)
		if p.ConnectsTo == "" {
			continue
		}
		if _, ok := seq.ByID(p.ConnectsTo); !ok {
			return nil, nil, &domain.ReferenceError{
				PanelID: p.ID,
				Field:   domain.FieldConnectsTo,
				Ref:     p.ConnectsTo,
			}
		}
	}

	prov := domain.NewProvenance()
	for i := 0; i < seq.Len(); i++ {
		e.enrichPanel(seq, i, prov)
	}

	slog.Debug("エンリッチメントが完了しました", "panels", seq.Len())
	return seq, prov, nil
}

// enrichPanel は位置 i のパネルの未設定フィールドを順に埋めます。
// spatial_relation → gaze → subject_position → focal_point の順序は
// 後段が前段の補完結果に依存するため固定です。
func (e *Enricher) enrichPanel(seq *domain.Sequence, i int, prov *domain.Provenance) {
	p := seq.At(i)
	prev := seq.Prev(i)

	if p.SpatialRelation == "" {
		p.SpatialRelation = e.deriveSpatialRelation(p, prev)
		prov.MarkDerived(p.ID, domain.FieldSpatialRelation)
	}

	if p.NarrativeWeight == "" {
		p.NarrativeWeight = domain.WeightMedium
		prov.MarkDerived(p.ID, domain.FieldNarrativeWeight)
	}

	if p.GazeDirection == "" {
		p.GazeDirection = deriveGaze(p, prev)
		prov.MarkDerived(p.ID, domain.FieldGazeDirection)
	}

	if p.SubjectPosition == "" {
		p.SubjectPosition = deriveSubjectPosition(p)
		prov.MarkDerived(p.ID, domain.FieldSubjectPosition)
	}

	if p.FocalPoint == "" {
		p.FocalPoint = deriveFocalPoint(p.SubjectPosition, p.GazeDirection)
		prov.MarkDerived(p.ID, domain.FieldFocalPoint)
	}

	if p.ShotType == "" {
		p.ShotType = deriveShotType(p, i == 0)
		prov.MarkDerived(p.ID, domain.FieldShotType)
	}

	if p.CameraAngle == "" {
		p.CameraAngle = deriveCameraAngle(p)
		prov.MarkDerived(p.ID, domain.FieldCameraAngle)
	}

	if p.ConnectsTo == "" {
		if next := seq.Next(i); next != nil {
			p.ConnectsTo = next.ID
			prov.MarkDerived(p.ID, domain.FieldConnectsTo)
		}
	}

	for j := range p.Dialogue {
		if p.Dialogue[j].Type == "" {
			p.Dialogue[j].Type = e.style.ResolveDialogueType(p.Dialogue[j])
		}
	}
	e.layout.AssignPositions(p)
}

// deriveSpatialRelation は直前パネルとのシーン記述の語彙重なりから
// 空間的つながりを推定します。先頭パネルは「新規」の意味で cut_to です。
func (e *Enricher) deriveSpatialRelation(p, prev *domain.Panel) domain.SpatialRelation {
	if prev == nil {
		return domain.RelationCutTo
	}
	if SceneOverlap(p.Scene, prev.Scene) >= e.cfg.SceneOverlapThreshold {
		return domain.RelationSameLocation
	}
	return domain.RelationCutTo
}

// deriveGaze は視線方向を導きます。台詞コマは話者のハッシュ傾向を基本とし、
// 直前コマと話者が異なる会話の応酬ではアイライン・マッチングのために
// 前コマの視線の反対側を向かせます。台詞のないコマは sequence の偶奇で
// 左右を交互に振ります。
func deriveGaze(p, prev *domain.Panel) domain.GazeDirection {
	if p.HasDialogue() {
		if prev != nil && prev.HasDialogue() {
			prevSpeaker, curSpeaker := prev.PrimarySpeaker(), p.PrimarySpeaker()
			if prevSpeaker != "" && curSpeaker != "" && prevSpeaker != curSpeaker {
				if prev.GazeDirection == domain.GazeLeft || prev.GazeDirection == domain.GazeRight {
					return prev.GazeDirection.Opposite()
				}
			}
		}
		return domain.GazeTendency(p.PrimarySpeaker())
	}

	if p.Sequence%2 == 0 {
		return domain.GazeLeft
	}
	return domain.GazeRight
}

// deriveSubjectPosition は sequence の偶奇で左右の三分割位置を交互に選びます。
// splash コマだけは強制的に中央へ寄せます。
func deriveSubjectPosition(p *domain.Panel) domain.SubjectPosition {
	if p.NarrativeWeight == domain.WeightSplash {
		return domain.PositionCenter
	}
	if p.Sequence%2 == 0 {
		return domain.PositionLeftThird
	}
	return domain.PositionRightThird
}

// focalTable は (subject_position, gaze_direction) から焦点ゾーンを引く固定表です。
// 視線が画面を横切る組み合わせは「視線の先」の上段へ、同じ側へ向く組み合わせは
// 下段へ寄せます（right_third + 左向き視線 → upper_left はフレームを振り返る構図）。
var focalTable = map[domain.SubjectPosition]map[domain.GazeDirection]domain.FocalPoint{
	domain.PositionLeftThird: {
		domain.GazeLeft:   domain.FocalLowerLeft,
		domain.GazeRight:  domain.FocalUpperRight,
		domain.GazeUp:     domain.FocalUpperLeft,
		domain.GazeDown:   domain.FocalLowerLeft,
		domain.GazeCenter: domain.FocalCenter,
	},
	domain.PositionRightThird: {
		domain.GazeLeft:   domain.FocalUpperLeft,
		domain.GazeRight:  domain.FocalLowerRight,
		domain.GazeUp:     domain.FocalUpperRight,
		domain.GazeDown:   domain.FocalLowerRight,
		domain.GazeCenter: domain.FocalCenter,
	},
	domain.PositionCenter: {
		domain.GazeLeft:   domain.FocalCenter,
		domain.GazeRight:  domain.FocalCenter,
		domain.GazeUp:     domain.FocalCenter,
		domain.GazeDown:   domain.FocalCenter,
		domain.GazeCenter: domain.FocalCenter,
	},
}

func deriveFocalPoint(pos domain.SubjectPosition, gaze domain.GazeDirection) domain.FocalPoint {
	if byGaze, ok := focalTable[pos]; ok {
		if focal, ok := byGaze[gaze]; ok {
			return focal
		}
	}
	return domain.FocalCenter
}

// deriveShotType は文脈から基本のフレーミングを選びます。
// シーンの開始コマと splash は引きの構図、会話コマは寄りの構図が基本です。
func deriveShotType(p *domain.Panel, first bool) domain.ShotType {
	switch {
	case first || p.SpatialRelation != domain.RelationSameLocation:
		return domain.ShotWide
	case p.NarrativeWeight == domain.WeightSplash:
		return domain.ShotWide
	case p.HasDialogue():
		return domain.ShotMediumClose
	default:
		return domain.ShotMedium
	}
}

// deriveCameraAngle は基本を目線の高さに置き、splash だけ見上げの
// ドラマチックなアングルにします。
func deriveCameraAngle(p *domain.Panel) domain.CameraAngle {
	if p.NarrativeWeight == domain.WeightSplash {
		return domain.AngleLow
	}
	return domain.AngleEyeLevel
}
