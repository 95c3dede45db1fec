package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"whatif-server/internal"
)

// examplePrompts are offered by `whatif examples` and the session help
var examplePrompts = []string{
	"What if Iron Man died in the first Avengers movie?",
	"What if Harry Potter was sorted into Slytherin?",
	"What if Luke Skywalker joined the Dark Side?",
	"What if Romeo and Juliet survived?",
}

type appOptions struct {
	model   string
	offline bool
}

// app carries what the subcommands share once the root pre-run has finished
type app struct {
	opts      appOptions
	generator *internal.Generator
	closer    func() error
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "whatif",
		Short:        "Turn \"what if\" prompts into short stories and comic scripts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.model, "model", "", "Gemini model name (defaults to GEMINI_MODEL or "+internal.DefaultGeminiModel+")")
	rootCmd.PersistentFlags().BoolVar(&a.opts.offline, "offline", false, "Never call the API, always use mock content")

	rootCmd.AddCommand(
		newGenerateCmd(a, internal.KindStory),
		newGenerateCmd(a, internal.KindComic),
		newSessionCmd(a),
		newExamplesCmd(),
	)
	return rootCmd, a
}

// execute runs the command tree and always releases the model client, including when
// a command fails
func execute(rootCmd *cobra.Command, a *app) error {
	defer a.close()
	return rootCmd.Execute()
}

func (a *app) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer(); err != nil {
		slog.Warn("Failed to close Gemini client", slog.String("error", err.Error()))
	}
	a.closer = nil
}

// setup loads configuration and builds the generator. Logs go to stderr so stdout only
// carries generated text.
func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	internal.InitLogger(os.Stderr, slog.LevelInfo)
	internal.LoadEnvFile()
	cfg, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	internal.InitLogger(os.Stderr, cfg.LogLevel)

	if a.opts.model != "" {
		cfg.GeminiModel = a.opts.model
	}

	var model internal.TextModel
	if cfg.HasAPIKey() && !a.opts.offline {
		gemini, err := internal.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Warn("Gemini unavailable, using mock content", slog.String("error", err.Error()))
		} else {
			model = gemini
			a.closer = gemini.Close
		}
	}

	a.generator = internal.NewGenerator(model, cfg.GenerationTimeout)
	return nil
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print a few example prompts",
		Args:  cobra.NoArgs,
		// examples needs no generator
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range examplePrompts {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		},
	}
}
