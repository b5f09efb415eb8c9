// Package cli implements tfctl, a command line front end to the outbound
// adapters.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"trustedform/internal/platform/config"
	"trustedform/internal/platform/logger"
	"trustedform/internal/trustedform/exchange"
	"trustedform/internal/trustedform/modules"
	"trustedform/internal/trustedform/transport"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// App holds the command line state shared by every command.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Transport replaces the net/http transport when set.
	Transport exchange.Transport

	configPath string
	env        string
	token      string
	format     string
	logLevel   string

	cfg     *config.Config
	logger  *slog.Logger
	service *exchange.Service
}

func New() *App {
	return &App{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Command builds the tfctl command tree.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "tfctl",
		Short:         "Run TrustedForm outbound adapters from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./trustedform.yaml)")
	flags.StringVar(&a.env, "env", "", "environment: production, staging or development")
	flags.StringVar(&a.token, "token", "", "data service bearer token")
	flags.StringVarP(&a.format, "output", "o", formatJSON, "output format: json or yaml")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		a.runCmd(),
		a.batchCmd(),
		a.variablesCmd(),
		a.validateCmd(),
		a.sampleCmd(),
	)
	return root
}

func (a *App) setup() error {
	switch a.format {
	case formatJSON, formatYAML:
	default:
		return fmt.Errorf("unsupported output format %q", a.format)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.env != "" {
		cfg.Environment = a.env
	}
	if a.token != "" {
		cfg.TrustedForm.DataServiceToken = a.token
	}
	a.cfg = cfg
	a.logger = logger.NewWithWriter(a.Err, a.logLevel, "text")

	t := a.Transport
	if t == nil {
		t = transport.New(transport.WithTimeout(cfg.TrustedForm.Timeout))
	}
	a.service = exchange.New(
		modules.Registry(cfg.Endpoints(), cfg.TrustedForm.DataServiceToken),
		t,
		exchange.WithLogger(a.logger),
	)
	return nil
}
