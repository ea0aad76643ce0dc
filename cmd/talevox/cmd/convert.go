package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/talevox/talevox/internal/pipeline"
	"github.com/talevox/talevox/pkg/logger"
)

var (
	convertLang  string
	convertSpeed float64
	convertPlay  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <pdf> <output.mp3>",
	Short: "Convert a PDF document into an MP3 audiobook",
	Long: `Converts a PDF document into a single MP3 audiobook.

The text is extracted, cleaned, split into sentence-sized chunks,
synthesized chunk by chunk and concatenated into one file. Requires
ffmpeg on the PATH (or audio.ffmpeg_path in the config file) and a
working internet connection for the speech service.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertLang, "lang", "l", "", "synthesis language code (default from config, usually en)")
	convertCmd.Flags().Float64VarP(&convertSpeed, "speed", "s", 0, "playback speed factor between 0.5 and 2.0")
	convertCmd.Flags().BoolVar(&convertPlay, "play", false, "open the audiobook with the default player when done")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{Level: logger.LogLevel(cfg.General.LogLevel), File: cfg.General.LogFile})
	if err != nil {
		return err
	}
	defer logger.Close(log)

	conv := newConverter(cfg, log)
	conv.OnProgress = printProgress

	result, err := conv.Convert(context.Background(), pipeline.Request{
		PDFPath:    args[0],
		OutputPath: args[1],
		Language:   convertLang,
		Speed:      convertSpeed,
	})
	if err != nil {
		if pipeline.IsKind(err, pipeline.KindEmptyExtraction) {
			return fmt.Errorf("no readable text in %s: the PDF may be scanned or image-based", args[0])
		}
		return err
	}

	fmt.Printf("Done: %s (%d chunks, %s)\n", result.OutputPath, result.Chunks, result.Duration.Round(time.Second))
	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	if convertPlay || cfg.Audio.PlayAfter {
		if err := openWithDefaultPlayer(result.OutputPath); err != nil {
			fmt.Printf("Warning: could not open player: %v\n", err)
		}
	}
	return nil
}

func printProgress(stage pipeline.Stage, done, total int) {
	if stage == pipeline.StageSynthesizing && total > 0 {
		if done < total {
			fmt.Printf("Synthesizing chunk %d/%d...\n", done+1, total)
		}
		return
	}
	fmt.Printf("%s...\n", stage)
}

// openWithDefaultPlayer hands the file to the operating system's default
// handler.
func openWithDefaultPlayer(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
