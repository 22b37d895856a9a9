package cmd

import (
	"fmt"

	"github.com/shouni/go-comic-director/pkg/compose"

	"github.com/spf13/cobra"
)

// templatesCmd は、組み込みの構図テンプレートカタログを一覧表示するのだ。
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "組み込みの構図テンプレートを一覧表示するのだ。",
	RunE:  templatesCommand,
}

func templatesCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range compose.TemplateNames() {
		text, _ := compose.Template(name)
		if _, err := fmt.Fprintf(out, "%-24s %s\n", name, text); err != nil {
			return err
		}
	}
	return nil
}
