package builder

import (
	"github.com/shouni/go-comic-director/internal/config"
	"github.com/shouni/go-comic-director/pkg/workflow"

	"github.com/shouni/go-remote-io/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する。
// これを各実行関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config         // Configは、環境変数から読み込まれたグローバルな設定です。
	Options config.GenerateOptions // Optionsは、コマンドラインから渡された実行時の設定です。
	Reader  remoteio.InputReader   // Readerは、ストーリープランの読み込みに使用する入力元です。
	Writer  remoteio.OutputWriter  // Writerは、構図結果とレポートを保存するための出力先です。
	Manager *workflow.Manager      // Managerは、構図ワークフローの Runner 群を構築する窓口です。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	manager *workflow.Manager,
) AppContext {
	return AppContext{
		Config:  cfg,
		Options: cfg.Options,
		Reader:  reader,
		Writer:  writer,
		Manager: manager,
	}
}
