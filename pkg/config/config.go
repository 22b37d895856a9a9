package config

import (
	"time"
)

// デフォルト値の定義
const (
	// DefaultSceneOverlapThreshold は spatial_relation を same_location と
	// 推定するための、シーン記述の有意語 Jaccard 類似度のしきい値です。
	// 調整可能な定数であり、出典上の確定値ではありません。
	DefaultSceneOverlapThreshold = 0.3

	// DefaultRepetitionRunLength は「単調なフレーミング」警告を出す、
	// 同一 shot_type の連続コマ数です。
	DefaultRepetitionRunLength = 4

	DefaultRateInterval = 10 * time.Second
	DefaultPanelLimit   = 50
	DefaultStyleSuffix  = "Japanese anime style, official art, cel-shaded, clean line art, high-quality manga coloring, expressive eyes, vibrant colors, cinematic lighting, masterpiece, ultra-detailed, flat shading, clear character features, no 3D effect, high resolution"
)

// Config は Comic Director の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- Enrichment Settings ---
	SceneOverlapThreshold float64 // same_location 推定のしきい値

	// --- Validation Settings ---
	RepetitionRunLength int  // 同一ショット連続の許容上限
	AutoFix             bool // シーン冒頭ショットの安全な自動修正を有効化

	// --- Generation Settings ---
	StyleSuffix  string
	RateInterval time.Duration

	// --- Layout Settings ---
	PanelLimit int // 1ストーリーで処理するパネルの上限

	// --- Timeout & Retries ---
	RequestTimeout time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		SceneOverlapThreshold: DefaultSceneOverlapThreshold,
		RepetitionRunLength:   DefaultRepetitionRunLength,
		StyleSuffix:           DefaultStyleSuffix,
		RateInterval:          DefaultRateInterval,
		PanelLimit:            DefaultPanelLimit,
	}
}
