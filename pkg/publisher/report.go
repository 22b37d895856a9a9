package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-comic-director/pkg/director"
	"github.com/shouni/go-comic-director/pkg/domain"
	"github.com/shouni/go-remote-io/remoteio"
)

// ReportPublisher は、構図エンジンの実行結果（ディレクティブと警告）を
// 構造化された Markdown レポートとして出力する役割を担います。
// 警告は生成結果と必ず並記され、黙って握りつぶされることはありません。
type ReportPublisher struct {
	writer remoteio.OutputWriter
	style  *director.StyleManager
}

// NewReportPublisher は新しい ReportPublisher を生成します。
func NewReportPublisher(writer remoteio.OutputWriter) *ReportPublisher {
	return &ReportPublisher{
		writer: writer,
		style:  director.NewStyleManager(),
	}
}

// ReportResult は出力されたレポートの概要です。
type ReportResult struct {
	ReportPath   string
	PanelCount   int
	WarningCount int
}

// Publish はレポートを組み立てて outputPath（ローカル or gs://...）へ書き出します。
func (p *ReportPublisher) Publish(
	ctx context.Context,
	plan *domain.StoryPlan,
	seq *domain.Sequence,
	directives [][]string,
	warnings []director.Warning,
	outputPath string,
) (ReportResult, error) {
	content := p.BuildReportMarkdown(plan, seq, directives, warnings)

	if err := p.writer.Write(ctx, outputPath, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return ReportResult{}, fmt.Errorf("レポートの書き出しに失敗しました (%s): %w", outputPath, err)
	}

	slog.Info("構図レポートを書き出しました",
		slog.String("path", outputPath),
		slog.Int("panels", seq.Len()),
		slog.Int("warnings", len(warnings)),
	)

	return ReportResult{
		ReportPath:   outputPath,
		PanelCount:   seq.Len(),
		WarningCount: len(warnings),
	}, nil
}

// BuildReportMarkdown はタイトル・警告一覧・パネルごとのディレクティブを統合した
// Markdown 文字列を生成します。
func (p *ReportPublisher) BuildReportMarkdown(
	plan *domain.StoryPlan,
	seq *domain.Sequence,
	directives [][]string,
	warnings []director.Warning,
) string {
	var sb strings.Builder

	title := plan.Title
	if title == "" {
		title = plan.ID
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	// 1. 警告セクション。0件でも見出しは出して「検査済み」であることを示す
	sb.WriteString(fmt.Sprintf("## Warnings (%d)\n\n", len(warnings)))
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("- **%s** [%s]: %s\n", w.Category, strings.Join(w.PanelIDs, ", "), w.Message))
	}
	if len(warnings) == 0 {
		sb.WriteString("- なし\n")
	}
	sb.WriteString("\n")

	// 2. パネルごとの構図ディレクティブ
	for i := 0; i < seq.Len(); i++ {
		panel := seq.At(i)
		sb.WriteString(fmt.Sprintf("## Panel %s\n", panel.ID))
		sb.WriteString(fmt.Sprintf("- shot: %s / angle: %s / weight: %s\n", panel.ShotType, panel.CameraAngle, panel.NarrativeWeight))
		sb.WriteString(fmt.Sprintf("- relation: %s / focal: %s / gaze: %s\n", panel.SpatialRelation, panel.FocalPoint, panel.GazeDirection))

		if i < len(directives) {
			for _, d := range directives[i] {
				sb.WriteString(fmt.Sprintf("- directive: %s\n", d))
			}
		}

		// 3. 台詞と配置ヒント（話者はCSS安全なIDに変換して出力）
		for _, d := range panel.Dialogue {
			speakerClass := p.style.ResolveSpeakerID(d.Character)
			sb.WriteString(fmt.Sprintf("- dialogue[%s/%s@%s]: %s\n", speakerClass, d.Type, d.PositionHint, strings.TrimSpace(d.Text)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
