package asset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultResultFileName は構図結果のデフォルト JSON ファイル名です。
	DefaultResultFileName = "compose_result.json"
	// DefaultReportFileName は構図レポートのデフォルト Markdown ファイル名です。
	DefaultReportFileName = "compose_report.md"
	// reportSuffix はストーリーごとのレポートファイル名の接尾辞です。
	reportSuffix = "-report.md"
)

// ReportFileRegex はストーリーごとのレポート (story-01-report.md 等) に一致します
var ReportFileRegex = createSuffixedRegex(reportSuffix)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// ResolveBaseURL は、入力パス（URLまたはローカルパス）から
// 親ディレクトリのパスを解決し、末尾がセパレータで終わるように正規化します。
func ResolveBaseURL(rawPath string) string {
	return urlpath.ResolveBaseDir(rawPath)
}

// ResolveReportPath は、出力ディレクトリとストーリーIDから、ストーリーごとの
// レポートの保存パスを生成します。
// 例: "gs://bucket/out", "story-01" -> "gs://bucket/out/story-01-report.md"
func ResolveReportPath(outputDir, storyID string) (string, error) {
	if storyID == "" {
		return "", fmt.Errorf("ストーリーIDが空です")
	}
	return urlpath.ResolvePath(outputDir, storyID+reportSuffix)
}

// createSuffixedRegex は、接尾辞に基づきストーリーIDつきファイル用の正規表現を生成します。
// 例: "-report.md" -> ^.+-report\.md$
func createSuffixedRegex(suffix string) *regexp.Regexp {
	ext := filepath.Ext(suffix)
	baseName := strings.TrimSuffix(suffix, ext)

	pattern := fmt.Sprintf(`^.+%s%s$`, regexp.QuoteMeta(baseName), regexp.QuoteMeta(ext))
	return regexp.MustCompile(pattern)
}
