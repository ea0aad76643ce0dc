package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talevox/talevox/internal/tts"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported synthesis languages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range tts.Languages {
			fmt.Printf("  %-6s %s\n", l.Code, l.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
