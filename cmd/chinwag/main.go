package main

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-go-golems/chinwag/pkg/backend"
	"github.com/go-go-golems/chinwag/pkg/chatui"
	"github.com/go-go-golems/chinwag/pkg/transcript"
)

var (
	themeName   string
	replyDelay  time.Duration
	noAltScreen bool
	logFile     string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "chinwag",
	Short: "chinwag is a self-contained chat surface for the terminal",
	Long: `chinwag renders a chat transcript with role-styled bubbles, a typing
indicator and a composer. Replies come from a built-in demo backend that
answers every prompt with a fixed message after a short delay.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	RunE: runChat,
}

// initLogger sends zerolog output to a file (or nowhere). Stdout belongs to
// the UI, so it is never a log destination.
func initLogger() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", logLevel)
	}

	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "could not open log file %s", logFile)
		}
		w = f
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("chinwag needs a terminal on stdout")
	}

	theme, err := chatui.ThemeByName(themeName)
	if err != nil {
		return err
	}

	store := transcript.NewStore()
	echo := backend.NewEchoBackend(replyDelay)
	model := chatui.NewModel(store, echo, theme)

	options := []tea.ProgramOption{
		tea.WithMouseCellMotion(), // mouse wheel scrolls the transcript
	}
	if !noAltScreen {
		options = append(options, tea.WithAltScreen())
	}

	log.Debug().Str("theme", theme.Name).Dur("reply_delay", replyDelay).Msg("starting chat surface")
	p := tea.NewProgram(model, options...)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "chat surface exited with error")
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVar(&themeName, "theme", "flat", "visual variant (flat or glass)")
	rootCmd.Flags().DurationVar(&replyDelay, "reply-delay", backend.DefaultReplyDelay, "delay before the demo reply")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
}

func main() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}
