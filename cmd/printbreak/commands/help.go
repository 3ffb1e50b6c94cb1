package commands

import (
	"embed"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/printbreak/pkg/cobrax/topics"
	"github.com/arthur-debert/printbreak/pkg/session"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds "help <topic>" for the embedded topics and the
// checkpoint key reference.
func installTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	tm, err := topics.Initialize(rootCmd, sub, topics.Options{
		Renderer: topics.MarkdownRenderer{Markdown: func(md string) string {
			return markdownRenderer(rootCmd.OutOrStdout()).Render(md)
		}},
	})
	if err != nil {
		return err
	}
	tm.Add("checkpoints", "checkpoints.md", session.HelpMarkdown())
	return nil
}

func markdownRenderer(w io.Writer) session.HelpRenderer {
	p := outputPalette(w, false)
	if !p.Enabled() {
		return session.PlainHelp{}
	}
	return session.GlamourHelp{Style: "dark", Width: 80, Profile: p.Profile()}
}
