package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/talevox/talevox/internal/tui"
	"github.com/talevox/talevox/pkg/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal interface",
	Long: `Starts the interactive terminal interface of TaleVox.

Navigation:
  Tab        - Cycle between fields
  Ctrl+E     - Extract text from the PDF for review
  Ctrl+S     - Start the conversion
  Left/Right - Change language (options row)
  +/-        - Change speed (options row)
  Ctrl+C     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal owns the screen, so logs go to the file only.
	log, err := logger.New(logger.Config{
		Level:  logger.LogLevel(cfg.General.LogLevel),
		Output: io.Discard,
		File:   cfg.General.LogFile,
	})
	if err != nil {
		return err
	}
	defer logger.Close(log)

	conv := newConverter(cfg, log)

	p := tea.NewProgram(
		tui.NewModel(conv, cfg.TTS.Language, cfg.Audio.Speed, cfg.Audio.PlayAfter),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}
	return nil
}
