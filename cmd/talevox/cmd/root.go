package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talevox/talevox/internal/audio"
	"github.com/talevox/talevox/internal/config"
	"github.com/talevox/talevox/internal/pipeline"
	"github.com/talevox/talevox/internal/tts"
	"github.com/talevox/talevox/pkg/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "talevox [pdf output.mp3]",
	Short: "TaleVox - turn PDF documents into audiobooks",
	Long: `TaleVox extracts the text of a PDF document, reads it aloud with an
online speech service and writes the result as a single MP3 audiobook.

Run without arguments for the interactive terminal interface, or pass a
PDF and an output file to convert directly:

  talevox book.pdf book.mp3
  talevox convert book.pdf book.mp3 --lang de --speed 1.25`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			return runTUI(cmd, args)
		case 2:
			return runConvert(cmd, args)
		default:
			return fmt.Errorf("expected a PDF path and an output path, got %d argument(s)", len(args))
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/talevox/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the config file, falling back to defaults when none
// exists. --verbose lowers the log level to debug.
func loadConfig() (config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// newConverter wires the shared pipeline for both front ends. A missing
// ffmpeg is not fatal here: the converter reports it when audio work is
// actually requested.
func newConverter(cfg config.Config, log logger.Logger) *pipeline.Converter {
	var engine pipeline.Engine
	toolchain, err := audio.FindToolchain(cfg.Audio.FFmpegPath)
	if err != nil {
		log.Warn("audio toolchain not found", "err", err)
	} else {
		log.Debug("audio toolchain located", "path", toolchain.Path())
		engine = toolchain
	}

	return pipeline.New(cfg, log, engine, func(tc tts.Config) (tts.Synthesizer, error) {
		return tts.NewGoogleTTS(tc)
	})
}
