package domain

import "sort"

// Panels は順序付きパネル列に対するユーティリティを提供します。
type Panels []Panel

// UniqueCharacterIDs はパネル列に登場する重複しないキャラクターIDを抽出します。
func (ps Panels) UniqueCharacterIDs() []string {
	set := make(map[string]struct{})
	for _, panel := range ps {
		for _, id := range panel.CharactersPresent {
			if id != "" {
				set[id] = struct{}{}
			}
		}
		for _, d := range panel.Dialogue {
			if d.Character != "" {
				set[d.Character] = struct{}{}
			}
		}
	}

	uniqueIDs := make([]string, 0, len(set))
	for id := range set {
		uniqueIDs = append(uniqueIDs, id)
	}
	sort.Strings(uniqueIDs)

	return uniqueIDs
}

// ValidateEnums は各パネルの明示フィールドが列挙の許容値に収まっているかを検査し、
// 最初に見つかった違反を FieldError として返します。ゼロ値（未設定）は対象外です。
func (ps Panels) ValidateEnums() error {
	for _, p := range ps {
		if err := validatePanelEnums(p); err != nil {
			return err
		}
	}
	return nil
}

func validatePanelEnums(p Panel) error {
	if p.ShotType != "" && !p.ShotType.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldShotType, Value: string(p.ShotType)}
	}
	if p.CameraAngle != "" && !p.CameraAngle.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldCameraAngle, Value: string(p.CameraAngle)}
	}
	if p.NarrativeWeight != "" && !p.NarrativeWeight.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldNarrativeWeight, Value: string(p.NarrativeWeight)}
	}
	if p.GazeDirection != "" && !p.GazeDirection.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldGazeDirection, Value: string(p.GazeDirection)}
	}
	if p.SubjectPosition != "" && !p.SubjectPosition.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldSubjectPosition, Value: string(p.SubjectPosition)}
	}
	if p.SpatialRelation != "" && !p.SpatialRelation.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldSpatialRelation, Value: string(p.SpatialRelation)}
	}
	if p.FocalPoint != "" && !p.FocalPoint.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldFocalPoint, Value: string(p.FocalPoint)}
	}
	if !p.CompositionOverride.IsValid() {
		return &FieldError{PanelID: p.ID, Field: FieldCompositionOverride, Value: string(p.CompositionOverride)}
	}
	for _, d := range p.Dialogue {
		if d.Type != "" && !d.Type.IsValid() {
			return &FieldError{PanelID: p.ID, Field: FieldDialogueType, Value: string(d.Type)}
		}
		if d.PositionHint != "" && !d.PositionHint.IsValid() {
			return &FieldError{PanelID: p.ID, Field: FieldDialoguePosition, Value: string(d.PositionHint)}
		}
	}
	return nil
}
