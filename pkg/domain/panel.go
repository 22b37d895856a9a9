package domain

// ShotType はパネルのフレーミング距離（構図の寄り引き）を表します。
type ShotType string

const (
	ShotExtremeWide ShotType = "extreme_wide"
	ShotWide        ShotType = "wide"
	ShotMedium      ShotType = "medium"
	ShotMediumClose ShotType = "medium_close"
	ShotCloseUp     ShotType = "close_up"
	ShotExtremeClose ShotType = "extreme_close"
)

// IsValid は列挙値として許可された ShotType かを判定します。
func (s ShotType) IsValid() bool {
	switch s {
	case ShotExtremeWide, ShotWide, ShotMedium, ShotMediumClose, ShotCloseUp, ShotExtremeClose:
		return true
	}
	return false
}

// IsEstablishing はシーン冒頭に置ける「状況設定ショット」級の引き構図かを判定します。
func (s ShotType) IsEstablishing() bool {
	return s == ShotWide || s == ShotExtremeWide
}

// CameraAngle はカメラの垂直方向のアングルを表します。
type CameraAngle string

const (
	AngleEyeLevel  CameraAngle = "eye_level"
	AngleLow       CameraAngle = "low_angle"
	AngleHigh      CameraAngle = "high_angle"
	AngleDutch     CameraAngle = "dutch_angle"
	AngleBirdsEye  CameraAngle = "birds_eye"
	AngleWormsEye  CameraAngle = "worms_eye"
)

func (a CameraAngle) IsValid() bool {
	switch a {
	case AngleEyeLevel, AngleLow, AngleHigh, AngleDutch, AngleBirdsEye, AngleWormsEye:
		return true
	}
	return false
}

// NarrativeWeight は物語上の視覚的な重みを表し、下流のレイアウト面積を左右します。
type NarrativeWeight string

const (
	WeightLow    NarrativeWeight = "low"
	WeightMedium NarrativeWeight = "medium"
	WeightHigh   NarrativeWeight = "high"
	WeightSplash NarrativeWeight = "splash"
)

func (w NarrativeWeight) IsValid() bool {
	switch w {
	case WeightLow, WeightMedium, WeightHigh, WeightSplash:
		return true
	}
	return false
}

// Rank はエスカレーション比較用の序数を返します。未設定は medium 相当として扱います。
func (w NarrativeWeight) Rank() int {
	switch w {
	case WeightLow:
		return 0
	case WeightHigh:
		return 2
	case WeightSplash:
		return 3
	default:
		return 1
	}
}

// GazeDirection は主要被写体の視線方向を表します。
type GazeDirection string

const (
	GazeLeft   GazeDirection = "left"
	GazeRight  GazeDirection = "right"
	GazeCenter GazeDirection = "center"
	GazeUp     GazeDirection = "up"
	GazeDown   GazeDirection = "down"
)

func (g GazeDirection) IsValid() bool {
	switch g {
	case GazeLeft, GazeRight, GazeCenter, GazeUp, GazeDown:
		return true
	}
	return false
}

// Opposite はアイライン・マッチング用に左右反転した視線を返します。
// 左右以外の視線は反転の意味を持たないため、そのまま返します。
func (g GazeDirection) Opposite() GazeDirection {
	switch g {
	case GazeLeft:
		return GazeRight
	case GazeRight:
		return GazeLeft
	}
	return g
}

// SubjectPosition は画面内の視覚的質量の水平配置を表します。
type SubjectPosition string

const (
	PositionLeftThird  SubjectPosition = "left_third"
	PositionCenter     SubjectPosition = "center"
	PositionRightThird SubjectPosition = "right_third"
)

func (p SubjectPosition) IsValid() bool {
	switch p {
	case PositionLeftThird, PositionCenter, PositionRightThird:
		return true
	}
	return false
}

// SpatialRelation は直前パネルとの空間的・時間的つながりを表します。
type SpatialRelation string

const (
	RelationSameLocation SpatialRelation = "same_location"
	RelationCutTo        SpatialRelation = "cut_to"
	RelationTimeSkip     SpatialRelation = "time_skip"
	RelationFlashback    SpatialRelation = "flashback"
	RelationParallel     SpatialRelation = "parallel"
)

func (r SpatialRelation) IsValid() bool {
	switch r {
	case RelationSameLocation, RelationCutTo, RelationTimeSkip, RelationFlashback, RelationParallel:
		return true
	}
	return false
}

// FocalPoint は読者の視線が最初に落ちる画面ゾーンを表します。
type FocalPoint string

const (
	FocalUpperLeft  FocalPoint = "upper_left"
	FocalUpperRight FocalPoint = "upper_right"
	FocalLowerLeft  FocalPoint = "lower_left"
	FocalLowerRight FocalPoint = "lower_right"
	FocalCenter     FocalPoint = "center"
)

func (f FocalPoint) IsValid() bool {
	switch f {
	case FocalUpperLeft, FocalUpperRight, FocalLowerLeft, FocalLowerRight, FocalCenter:
		return true
	}
	return false
}

// BubblePosition は吹き出し配置用の8分割スクリーンゾーンを表します。
type BubblePosition string

const (
	BubbleTopLeft      BubblePosition = "top_left"
	BubbleTopCenter    BubblePosition = "top_center"
	BubbleTopRight     BubblePosition = "top_right"
	BubbleMiddleLeft   BubblePosition = "middle_left"
	BubbleMiddleRight  BubblePosition = "middle_right"
	BubbleBottomLeft   BubblePosition = "bottom_left"
	BubbleBottomCenter BubblePosition = "bottom_center"
	BubbleBottomRight  BubblePosition = "bottom_right"
)

func (b BubblePosition) IsValid() bool {
	switch b {
	case BubbleTopLeft, BubbleTopCenter, BubbleTopRight,
		BubbleMiddleLeft, BubbleMiddleRight,
		BubbleBottomLeft, BubbleBottomCenter, BubbleBottomRight:
		return true
	}
	return false
}

// DialogueType は台詞の発話形式（通常・心の声・叫び等）を表します。
type DialogueType string

const (
	DialogueSpeech    DialogueType = "speech"
	DialogueThought   DialogueType = "thought"
	DialogueShout     DialogueType = "shout"
	DialogueWhisper   DialogueType = "whisper"
	DialogueNarration DialogueType = "narration"
	DialogueCaption   DialogueType = "caption"
	DialogueSFX       DialogueType = "sfx"
)

func (d DialogueType) IsValid() bool {
	switch d {
	case DialogueSpeech, DialogueThought, DialogueShout, DialogueWhisper,
		DialogueNarration, DialogueCaption, DialogueSFX:
		return true
	}
	return false
}

// CompositionOverride は構図ヒューリスティクスを強制上書きする明示シグナルです。
// 空文字は「上書きなし」を意味します。
type CompositionOverride string

const (
	OverrideNone      CompositionOverride = ""
	OverrideSymmetric CompositionOverride = "symmetric"
	OverrideDynamic   CompositionOverride = "dynamic"
)

func (o CompositionOverride) IsValid() bool {
	switch o {
	case OverrideNone, OverrideSymmetric, OverrideDynamic:
		return true
	}
	return false
}

// Dialogue は1つの台詞エントリ（話者・本文・形式・配置ヒント）を保持します。
type Dialogue struct {
	Character    string         `json:"character"`
	Text         string         `json:"text"`
	Type         DialogueType   `json:"type,omitempty"`
	PositionHint BubblePosition `json:"position_hint,omitempty"`
}

// Panel は物語を構成する1コマ分のビジュアル記述とメタデータを保持します。
// 構図関連フィールドはゼロ値（空文字）を「未設定」として扱い、
// エンリッチメントが決定論的に補完します。
type Panel struct {
	ID                string          `json:"id"`
	Sequence          int             `json:"sequence"`
	Scene             string          `json:"scene"`
	Action            string          `json:"action"`
	CharactersPresent []string        `json:"characters_present,omitempty"`
	Mood              string          `json:"mood,omitempty"`

	ShotType        ShotType        `json:"shot_type,omitempty"`
	CameraAngle     CameraAngle     `json:"camera_angle,omitempty"`
	NarrativeWeight NarrativeWeight `json:"narrative_weight,omitempty"`
	GazeDirection   GazeDirection   `json:"gaze_direction,omitempty"`
	SubjectPosition SubjectPosition `json:"subject_position,omitempty"`
	SpatialRelation SpatialRelation `json:"spatial_relation,omitempty"`
	FocalPoint      FocalPoint      `json:"focal_point,omitempty"`

	ConnectsTo          string              `json:"connects_to,omitempty"`
	CompositionOverride CompositionOverride `json:"composition_override,omitempty"`

	Dialogue []Dialogue `json:"dialogue,omitempty"`
}

// HasDialogue は台詞を1つ以上持つかを返します。
func (p Panel) HasDialogue() bool {
	return len(p.Dialogue) > 0
}

// PrimarySpeaker は主話者を返します。characters_present の先頭を優先し、
// 空の場合は最初の台詞の話者にフォールバックします。
func (p Panel) PrimarySpeaker() string {
	if len(p.CharactersPresent) > 0 {
		return p.CharactersPresent[0]
	}
	for _, d := range p.Dialogue {
		if d.Character != "" {
			return d.Character
		}
	}
	return ""
}

// DistinctSpeakers は台詞に登場する話者を出現順・重複なしで返します。
// ナレーションやSFXなど話者なしのエントリは数えません。
func (p Panel) DistinctSpeakers() []string {
	seen := make(map[string]struct{}, len(p.Dialogue))
	var speakers []string
	for _, d := range p.Dialogue {
		if d.Character == "" {
			continue
		}
		if _, ok := seen[d.Character]; ok {
			continue
		}
		seen[d.Character] = struct{}{}
		speakers = append(speakers, d.Character)
	}
	return speakers
}
