package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"polyhello/src"
	"polyhello/src/ai"
	"polyhello/src/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type VersionInfo struct {
	Branch string
	Status string
	Number string
	Commit string
}

var rootCmd = &cobra.Command{
	Use:   "polyhello",
	Short: "polyhello - ask Gemini, Groq or OpenAI for a short hello.",
	Long: `Ask one text-generation provider for a short greeting and print the result.

The provider named by PROVIDER (gemini, groq or opinai) is tried first, then
Groq and OpenAI in that order. Credentials come from GOOGLE_API_KEY,
GROQ_API_KEY and OPENAI_API_KEY, read from the environment, ./.env or
~/.polyhello/config.yaml.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHello(cmd.Context(), cfg, logger, cmd.OutOrStdout())
	},
}

var (
	currentVersionInfo VersionInfo
	cfg                *config.Config
	logger             zerolog.Logger
)

func Execute(versionInfo VersionInfo) {
	currentVersionInfo = versionInfo

	fullVersion := fmt.Sprintf("%s %s %s %s",
		versionInfo.Branch, versionInfo.Status, versionInfo.Number, versionInfo.Commit)
	rootCmd.Version = fullVersion

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		printFatal(os.Stdout, err)
		os.Exit(1)
	}
}

// printFatal writes the error message as a plain line, without colour.
func printFatal(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}

// setup loads configuration and builds the logger. Cobra runs it once,
// before the selected command.
func setup(logOut io.Writer) error {
	loaded, err := config.Load(config.LoadOptions{})
	if err != nil {
		return err
	}
	cfg = loaded
	logger = newLogger(cfg.LogLevel, logOut)
	return nil
}

func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func runHello(ctx context.Context, cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	selector := ai.NewSelector(ai.NewProviders(cfg), cfg.Provider, log)

	log.Debug().Strs("order", orderNames(selector.Order())).Msg("selecting provider")

	result, err := selector.Select(ctx)
	if err != nil {
		var aiErr *ai.Error
		if errors.As(err, &aiErr) && aiErr.Kind == ai.KindExhausted {
			log.Debug().Str("attempts", aiErr.Summary()).Msg("all providers failed")
		}
		return err
	}
	return src.RenderResult(out, result, cfg.Format)
}

func orderNames(ids []ai.ProviderID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}
