package builder

import (
	"fmt"

	"github.com/shouni/go-comic-director/internal/config"
	"github.com/shouni/go-comic-director/pkg/domain"
	"github.com/shouni/go-comic-director/pkg/workflow"

	"github.com/shouni/go-remote-io/remoteio"
)

// BuildWorkflowManager はキャラクター定義を読み込み、構図ワークフローの
// Manager を構築するのだ。
func BuildWorkflowManager(
	cfg *config.Config,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
) (*workflow.Manager, error) {
	chars, err := domain.LoadCharacters(cfg.Options.CharacterConfig)
	if err != nil {
		return nil, fmt.Errorf("キャラクター情報の取得に失敗しました: %w", err)
	}

	manager, err := workflow.New(workflow.ManagerArgs{
		Config:        cfg.ToEngineConfig(),
		Reader:        reader,
		Writer:        writer,
		CharactersMap: chars,
	})
	if err != nil {
		return nil, fmt.Errorf("ワークフローManagerの初期化に失敗したのだ: %w", err)
	}

	return manager, nil
}
