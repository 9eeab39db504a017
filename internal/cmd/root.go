package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"confman/internal/confstore"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath string
	EnvName    string
	BackupRoot string
	JSONOutput bool
	Quiet      bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a pre-built App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	if p.ConfigPath == "" {
		return nil, fmt.Errorf("no configuration file specified (use --file)")
	}

	env, err := confstore.ParseEnvironment(p.EnvName)
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	level := zerolog.InfoLevel
	if p.Quiet {
		level = zerolog.ErrorLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errOut}).
		Level(level).
		With().Timestamp().Logger()

	// Open never returns a nil store: a failed load leaves it empty but
	// usable, and the cause has already been logged. Commands that need a
	// document report their own failure.
	store, _ := confstore.Open(p.ConfigPath, confstore.Options{
		Environment: env,
		BackupRoot:  p.BackupRoot,
		Logger:      &logger,
	})

	return &App{
		Store: store,
		Out:   out,
		Err:   errOut,
		JSON:  p.JSONOutput,
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confman",
		Short: "Manage JSON and YAML configuration files",
		Long: `Confman manages structured configuration files. It loads a JSON or
YAML document, validates its shape, updates nested values by dotted key
path, writes changes back atomically, and keeps a timestamped backup of
the file under the backup root every time it is opened.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVarP(&provider.ConfigPath, "file", "f", "", "Path to the configuration file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().StringVar(&provider.EnvName, "env", "development", "Environment tag (development, staging, production)")
	rootCmd.PersistentFlags().StringVar(&provider.BackupRoot, "backups", "", "Backup root directory (default \"backups\")")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&provider.Quiet, "quiet", "q", false, "Only log errors")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newValidateCmd(provider))
	rootCmd.AddCommand(newSaveCmd(provider))
	rootCmd.AddCommand(newBackupCmd(provider))
	rootCmd.AddCommand(newEnvCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
