package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/translate-flow/internal/config"
	"github.com/nguyentantai21042004/translate-flow/internal/exporter"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/spf13/cobra"
)

type translateFlags struct {
	tone        string
	language    string
	chunkSize   int
	concurrency int
	export      bool
}

func newTranslateCmd(configPath *string) *cobra.Command {
	var f translateFlags

	cmd := &cobra.Command{
		Use:   "translate [file|-]",
		Short: "Translate one document and print the result",
		Long: "Translate a file, or standard input when the argument is '-' or omitted.\n" +
			"Logs go to stderr; the translated text goes to stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)

			return runTranslate(cmd.Context(), cfg, src, f.export, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.tone, "tone", "", "tone key (see 'tones')")
	cmd.Flags().StringVar(&f.language, "language", "", "target language")
	cmd.Flags().IntVar(&f.chunkSize, "chunk-size", 0, "target chunk size in characters")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "maximum chunks in flight")
	cmd.Flags().BoolVar(&f.export, "export", false, "also write the result to the output folder")
	return cmd
}

// apply copies explicitly set flags over the loaded configuration.
func (f translateFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("tone") {
		cfg.Translation.Tone = f.tone
	}
	if cmd.Flags().Changed("language") {
		cfg.Translation.TargetLanguage = f.language
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.Translation.ChunkSize = f.chunkSize
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Translation.Concurrency = f.concurrency
	}
}

func runTranslate(ctx context.Context, cfg *config.Config, src string, export bool, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	text, name, err := readSource(src, stdin)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.translator.Translate(ctx, text)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	if _, err := fmt.Fprintln(stdout, res.Text); err != nil {
		return err
	}
	if len(res.Failed) > 0 {
		log.Warn(ctx, "%d of %d chunks failed: %v", len(res.Failed), res.Chunks, res.Failed)
	}

	if export {
		if _, err := a.exporter.Export(ctx, exporter.Document{
			Name:     name,
			Text:     res.Text,
			Markdown: strings.EqualFold(filepath.Ext(src), ".md"),
		}); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	return nil
}

// readSource returns the text and the export name for src; "-" reads stdin.
func readSource(src string, stdin io.Reader) (string, string, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	base := filepath.Base(src)
	return string(data), strings.TrimSuffix(base, filepath.Ext(base)), nil
}
