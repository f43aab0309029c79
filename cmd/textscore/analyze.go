package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/logger"
	"github.com/baditaflorin/go_text_heuristic/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_heuristic/internal/adapters/render"
	"github.com/baditaflorin/go_text_heuristic/internal/adapters/source"
	"github.com/baditaflorin/go_text_heuristic/internal/batch"
	"github.com/baditaflorin/go_text_heuristic/internal/config"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
	"github.com/baditaflorin/go_text_heuristic/pkg/scorer"
)

var (
	// ErrNoInput is returned when neither files, --text nor --stdin were given.
	ErrNoInput = errors.New("no input: pass files, --text or --stdin")
	// ErrInputsFailed is returned after rendering when at least one input could not be read.
	ErrInputsFailed = errors.New("some inputs could not be analyzed")
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Score one or more texts",
		Long: `Analyze scores each input and prints AI-generated / human-written percentages.

Inputs may be .txt, .md or .pdf files, literal text given with --text, or
standard input with --stdin. Blank inputs produce "no result".

Examples:
  textscore analyze essay.txt
  textscore analyze --format markdown chapter1.md chapter2.md
  cat draft.txt | textscore analyze --stdin --format json`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringArrayP("text", "t", nil, "Literal text to analyze (repeatable)")
	cmd.Flags().Bool("stdin", false, "Read text from standard input")
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or markdown")
	cmd.Flags().IntP("concurrency", "j", config.DefaultCLIConcurrency, "Number of inputs analyzed in parallel")

	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("format") {
		cfg.CLI.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.CLI.Concurrency, _ = cmd.Flags().GetInt("concurrency")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.CLI.Format)
	if err != nil {
		return err
	}

	log, err := newCLILogger(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	sc, err := scorer.New(
		scorer.WithPortsLogger(log),
		scorer.WithNormalizer(normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.ParseNormalizerType(cfg.Analysis.Normalizer))),
		scorer.WithMinRecommendedLength(cfg.Analysis.MinRecommendedLength),
	)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := batch.NewProcessor(sc, log, cfg.CLI.Concurrency).Process(ctx, inputs)
	if err != nil {
		return err
	}

	w, err := render.NewWriter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := w.Write(reports); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for _, r := range reports {
		if r.Error != "" {
			return ErrInputsFailed
		}
	}
	return nil
}

func newCLILogger(cmd *cobra.Command) (ports.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return logger.NewNopLogger(), nil
	}
	return logger.NewCustomStdLogger(logger.DefaultConfig(cmd.ErrOrStderr(), false))
}

func collectInputs(cmd *cobra.Command, args []string) ([]batch.Input, error) {
	texts, _ := cmd.Flags().GetStringArray("text")
	useStdin, _ := cmd.Flags().GetBool("stdin")

	inputs := make([]batch.Input, 0, len(args)+len(texts)+1)
	for i, t := range texts {
		name := fmt.Sprintf("text-%d", i+1)
		body := t
		inputs = append(inputs, batch.Input{Name: name, Load: func() (source.Text, error) {
			return source.FromString(name, body), nil
		}})
	}
	if useStdin {
		in := cmd.InOrStdin()
		inputs = append(inputs, batch.Input{Name: "stdin", Load: func() (source.Text, error) {
			return source.LoadReader("stdin", in)
		}})
	}
	for _, path := range args {
		inputs = append(inputs, batch.Input{Name: path, Load: func() (source.Text, error) {
			return source.LoadFile(path)
		}})
	}

	if len(inputs) == 0 {
		return nil, ErrNoInput
	}
	return inputs, nil
}
