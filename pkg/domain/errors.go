package domain

import "fmt"

// フィールド名の定数。エラー報告と由来（derived/explicit）管理の共通キーです。
const (
	FieldShotType            = "shot_type"
	FieldCameraAngle         = "camera_angle"
	FieldNarrativeWeight     = "narrative_weight"
	FieldGazeDirection       = "gaze_direction"
	FieldSubjectPosition     = "subject_position"
	FieldSpatialRelation     = "spatial_relation"
	FieldFocalPoint          = "focal_point"
	FieldConnectsTo          = "connects_to"
	FieldCompositionOverride = "composition_override"
	FieldDialogueType        = "dialogue.type"
	FieldDialoguePosition    = "dialogue.position_hint"
)

// FieldError は明示的に指定された値が列挙の許容範囲外だったことを表します。
// 実行を止める検証エラーであり、警告ではありません。
type FieldError struct {
	PanelID string
	Field   string
	Value   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("パネル %s のフィールド %s に許可されていない値 '%s' が指定されています", e.PanelID, e.Field, e.Value)
}

// ReferenceError は connects_to などの参照先パネルIDが存在しないことを表します。
type ReferenceError struct {
	PanelID string
	Field   string
	Ref     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("パネル %s の %s が存在しないパネル '%s' を参照しています", e.PanelID, e.Field, e.Ref)
}

// SequenceError はパネル列そのものの不整合（空列・ID重複・順序の破綻）を表します。
type SequenceError struct {
	PanelID string // 問題を引き起こしたパネル。列全体の問題では空
	Reason  string
}

func (e *SequenceError) Error() string {
	if e.PanelID == "" {
		return fmt.Sprintf("パネル列が不正です: %s", e.Reason)
	}
	return fmt.Sprintf("パネル %s でパネル列が不正です: %s", e.PanelID, e.Reason)
}

// MissingFieldError はエンリッチメント前のパネルがディレクティブ生成に
// 渡されたことを表すプログラミングエラーです。生成器は推測で埋めません。
type MissingFieldError struct {
	PanelID string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("パネル %s のフィールド %s が未補完です。ディレクティブ生成の前にエンリッチメントを実行してください", e.PanelID, e.Field)
}
