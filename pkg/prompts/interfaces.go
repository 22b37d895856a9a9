package prompts

import "github.com/shouni/go-comic-director/pkg/domain"

// ImagePrompt は、構図ディレクティブから画像生成用プロンプトを構築する契約です。
type ImagePrompt interface {
	// BuildPanel は、単一パネル用のユーザープロンプト、システムプロンプト、
	// および使用する seed 値を決定します。directives は構図エンジンの出力です。
	BuildPanel(panel domain.Panel, directives []string) (userPrompt string, systemPrompt string, targetSeed int64)
}
