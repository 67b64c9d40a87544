package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/existflow/tutordesk/internal/config"
	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
	"github.com/existflow/tutordesk/internal/tui"
)

type rootOptions struct {
	logLevel   string
	logFile    string
	logConsole bool
	noSeed     bool
}

// newRootCmd builds the command tree. Every invocation starts from a fresh
// session, so nothing carries over between runs.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tutordesk",
		Short: "TutorDesk - keep track of students and lessons",
		Long: `TutorDesk helps a private tutor keep track of clients (students and their
parents) and tasks (lessons, assignments) with an urgency status derived from
each task's date.

Run 'tutordesk' without arguments to launch the interactive TUI. When the
output is not a terminal the client and task tables are printed instead.

CONFIGURATION:
  ~/.tutordesk/config.yaml holds persistent settings. A .env file in the
  working directory and these variables override the defaults:
    TUTORDESK_SEED          Load sample clients and tasks (default: true)
    TUTORDESK_LOG_LEVEL     DEBUG, INFO, WARN or ERROR (default: INFO)
    TUTORDESK_LOG_FILE      Log file (default: ~/.tutordesk/logs/tutordesk.log)
    TUTORDESK_LOG_CONSOLE   Also log to stderr (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.startSession(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			if !isTerminal(cmd.OutOrStdout()) {
				logger.Info("Output is not a terminal, printing tables")
				return printOverview(cmd.OutOrStdout(), s.user)
			}
			return runTUI(s)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Info("TutorDesk exiting", logger.F("command", cmd.Name()))
			logger.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	flags.StringVar(&opts.logFile, "log-file", "", "Path to log file")
	flags.BoolVar(&opts.logConsole, "log-console", false, "Enable console logging")
	flags.BoolVar(&opts.noSeed, "no-seed", false, "Start without the sample clients and tasks")

	cmd.AddCommand(newClientCmd())
	cmd.AddCommand(newTaskCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// startSession loads configuration, starts the logger and attaches a new
// session to cmd's context.
func (o *rootOptions) startSession(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	// Load config from file (or defaults if not exists)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to load config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Override with CLI flags if provided
	configChanged := false
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
		configChanged = true
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = o.logFile
		configChanged = true
	}
	if cmd.Flags().Changed("log-console") {
		cfg.LogConsole = o.logConsole
		configChanged = true
	}

	// Save config if changed via CLI flags
	if configChanged {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to save config: %v\n", err)
		}
	}

	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.ParseLevel(cfg.LogLevel)
	logConfig.FilePath = cfg.LogFile
	logConfig.Console = cfg.LogConsole

	if err := logger.Init(logConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// --no-seed applies to this run only
	if o.noSeed {
		cfg.SeedSampleData = false
	}

	var userOpts []model.Option
	if cfg.SeedSampleData {
		userOpts = append(userOpts, model.WithSampleData())
	}
	user := model.NewUser(userOpts...)

	logger.Info("TutorDesk started",
		logger.F("command", cmd.Name()),
		logger.F("seeded", cfg.SeedSampleData),
		logger.F("clients", user.Clients().Len()),
		logger.F("logging", logger.GetConfig().String()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withSession(ctx, &session{cfg: cfg, user: user}))
	return nil
}

func runTUI(s *session) error {
	log := logger.WithFields(logger.F("component", "tui"))
	log.Info("Launching TUI")
	m := tui.NewModel(s.user, s.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Error("TUI error", logger.F("error", err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	log.Info("TUI exited normally")
	return nil
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}
