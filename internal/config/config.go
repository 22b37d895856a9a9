package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"

	engine "github.com/shouni/go-comic-director/pkg/config"
)

// デフォルト値の定義なのだ
const (
	DefaultCharactersFile = "examples/characters.json" // キャラクターの視覚情報（DNA）を定義したJSONパス
	DefaultOutputFile     = "output/compose_result.json"
	DefaultReportFile     = "output/compose_report.md"
	DefaultOutputDir      = "output"
	DefaultRequestTimeout = 30 * time.Second
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	StyleSuffix string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		StyleSuffix: envutil.GetEnv("COMIC_STYLE_SUFFIX", engine.DefaultStyleSuffix),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	PlanFile        string // --plan-file: ストーリープラン（JSON または Markdown、'-'で標準入力）
	CharacterConfig string // --char-config

	// 出力関連
	OutputFile string // --output-file: 構図結果 JSON の保存先
	ReportFile string // --report-file: Markdown レポートの保存先
	OutputDir  string // --output-dir: バッチ実行時のレポート出力先

	// エンジン挙動設定
	PanelLimit       int     // --panel-limit
	RunLength        int     // --run-length: 単調フレーミング警告のしきい値
	OverlapThreshold float64 // --overlap-threshold: same_location 推定のしきい値
	AutoFix          bool    // --auto-fix

	// 実行制御
	RateInterval   time.Duration // --rate-interval
	RequestTimeout time.Duration // --request-timeout
}

// ToEngineConfig は CLI の設定を構図エンジン用の Config に変換するのだ。
func (c *Config) ToEngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.StyleSuffix = c.StyleSuffix

	if c.Options.OverlapThreshold > 0 {
		cfg.SceneOverlapThreshold = c.Options.OverlapThreshold
	}
	if c.Options.RunLength > 0 {
		cfg.RepetitionRunLength = c.Options.RunLength
	}
	if c.Options.PanelLimit > 0 {
		cfg.PanelLimit = c.Options.PanelLimit
	}
	if c.Options.RateInterval > 0 {
		cfg.RateInterval = c.Options.RateInterval
	}
	cfg.AutoFix = c.Options.AutoFix
	cfg.RequestTimeout = c.Options.RequestTimeout

	return cfg
}
