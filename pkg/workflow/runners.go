package workflow

import (
	"github.com/shouni/go-comic-director/pkg/parser"
	"github.com/shouni/go-comic-director/pkg/publisher"
	"github.com/shouni/go-comic-director/pkg/runner"
)

// BuildComposeRunner は、1ストーリーの構図生成を担当する Runner を作成します。
func (m *Manager) BuildComposeRunner() ComposeRunner {
	pub := publisher.NewReportPublisher(m.writer)
	return runner.NewStoryComposeRunner(m.cfg, m.imagePrompt, pub)
}

// BuildBatchRunner は、複数ストーリーの並列構図生成を担当する Runner を作成します。
func (m *Manager) BuildBatchRunner() BatchRunner {
	return runner.NewBatchComposeRunner(m.cfg, m.BuildComposeRunner())
}

// BuildPlanLoader は、JSON のストーリープランを読み込むローダーを作成します。
func (m *Manager) BuildPlanLoader() PlanLoader {
	return parser.NewStoryPlanParser(m.reader)
}

// BuildMarkdownParser は、Markdown 形式のプロットを解析するパーサーを作成します。
func (m *Manager) BuildMarkdownParser() *parser.MarkdownParser {
	return parser.NewMarkdownParser()
}
