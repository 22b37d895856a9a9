package compose

import (
	"maps"
	"slices"
)

// テンプレート名の定義。生成ルールは本文を直接埋め込まず、必ず名前で引きます。
const (
	TemplateEstablishing         = "establishing"
	TemplateEstablishingDramatic = "establishing_dramatic"
	TemplateSpeakerA             = "speaker_a"
	TemplateSpeakerB             = "speaker_b"
	TemplateReaction             = "reaction"
	TemplateReactionWide         = "reaction_wide"
	TemplateActionPeak           = "action_peak"
	TemplateActionBuildup        = "action_buildup"
	TemplateActionAftermath      = "action_aftermath"
	TemplateTransition           = "transition"
	TemplateTimeSkip             = "time_skip"
	TemplateFlashback            = "flashback"
	TemplateReveal               = "reveal"
	TemplateConfrontation        = "confrontation"
	TemplateClimax               = "climax"
	TemplateClimaxSplash         = "climax_splash"
	TemplateContemplation        = "contemplation"
	TemplateParallel             = "parallel"
)

// templates は構図テンプレートの固定カタログです。プロセス全体で共有される
// 読み取り専用データであり、起動後に変更されることはありません。
// 本文は下流の画像プロンプトビルダーがそのまま連結できる英語の断片です。
var templates = map[string]string{
	TemplateEstablishing:         "wide establishing shot, full environment visible, characters small in frame",
	TemplateEstablishingDramatic: "dramatic wide establishing shot, high contrast lighting, ominous atmosphere",
	TemplateSpeakerA:             "over-the-shoulder framing favoring the left speaker, listener's shoulder in foreground",
	TemplateSpeakerB:             "over-the-shoulder framing favoring the right speaker, listener's shoulder in foreground",
	TemplateReaction:             "tight reaction shot, expressive face, minimal background detail",
	TemplateReactionWide:         "group reaction shot, multiple stunned faces, wide framing",
	TemplateActionPeak:           "peak action moment, dynamic diagonal composition, motion lines",
	TemplateActionBuildup:        "rising tension, tightening frame, coiled posture before release",
	TemplateActionAftermath:      "aftermath stillness, dust settling, quiet wide frame",
	TemplateTransition:           "transitional beat, neutral framing, breathing room between scenes",
	TemplateTimeSkip:             "time-skip transition, shifted lighting and lengthened shadows",
	TemplateFlashback:            "flashback treatment, desaturated tones, soft vignette edges",
	TemplateReveal:               "dramatic reveal composition, subject emerging into frame, strong key light",
	TemplateConfrontation:        "centered symmetric standoff, two subjects facing each other in profile",
	TemplateClimax:               "climactic composition, converging leading lines, maximum contrast",
	TemplateClimaxSplash:         "full splash treatment, centered symmetric composition, full-bleed impact, maximum detail",
	TemplateContemplation:        "quiet contemplative framing, generous negative space, soft ambient light",
	TemplateParallel:             "parallel action cut, mirrored composition echoing the concurrent scene",
}

// Template は名前からテンプレート本文を引きます。カタログにない名前は
// 第2戻り値が false になります。
func Template(name string) (string, bool) {
	text, ok := templates[name]
	return text, ok
}

// TemplateNames はカタログの全テンプレート名を辞書順で返します。
func TemplateNames() []string {
	names := slices.Collect(maps.Keys(templates))
	slices.Sort(names)
	return names
}

// mustTemplate はカタログ内の既知テンプレートを引く内部ヘルパーです。
// 定数名経由でしか呼ばれないため、欠落はカタログの構成ミスを意味します。
func mustTemplate(name string) string {
	text, ok := templates[name]
	if !ok {
		panic("compose: テンプレートカタログに " + name + " が登録されていません")
	}
	return text
}
