package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/quill/internal/app"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/tracing"
	"github.com/zjrosen/quill/internal/ui/styles"
)

// localConfigPath is checked before the user config directory.
const localConfigPath = ".quill/config.yaml"

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	v       *viper.Viper

	// configErr holds a config file that exists but could not be used.
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "quill [file]",
	Short: "A small modal text editor for the terminal",
	Long: `A small modal text editor for the terminal.

Normal mode moves the cursor (h j k l, arrows, 0, $), i enters Insert
mode, esc returns to Normal mode and q quits. Run 'quill keys' for the
full keymap.`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .quill/config.yaml, then ~/.config/quill/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false,
		"write debug logs (also QUILL_DEBUG=1)")
	rootCmd.Flags().String("host", "",
		"terminal driver: term or tea (overrides config)")
}

func initConfig() {
	// "::" lets theme.colors keep dotted token names like "mode.normal.bg".
	v = viper.NewWithOptions(viper.KeyDelimiter("::"))
	configErr = nil

	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("host", rootCmd.Flags().Lookup("host"))

	defaults := config.Defaults()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("host", defaults.Host)
	v.SetDefault("theme::preset", defaults.Theme.Preset)
	v.SetDefault("tracing::enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing::exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing::file_path", defaults.Tracing.FilePath)
	v.SetDefault("tracing::otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing::sample_rate", defaults.Tracing.SampleRate)
	v.SetDefault("tracing::service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .quill/config.yaml (current directory)
		// 2. ~/.config/quill/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "quill"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	// A missing config file is fine; defaults apply. Anything else is
	// reported once logging is up.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}

	cfg = config.Config{}
	if err := v.Unmarshal(&cfg); err != nil && configErr == nil {
		configErr = err
	}
}

// configPath is where settings are saved: the file that was loaded, or
// the user config file when none was.
func configPath() string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return localConfigPath
	}
	return filepath.Join(home, ".config", "quill", "config.yaml")
}

func runApp(_ *cobra.Command, args []string) error {
	if configErr != nil {
		return fmt.Errorf("reading config: %w", configErr)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cleanup, err := initLogging(cfg)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer cleanup()

	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	session, err := app.New(app.Options{
		Path:   path,
		Host:   cfg.Host,
		Tracer: provider.Tracer(),
	})
	if err != nil {
		return err
	}
	return session.Run(context.Background())
}

// initLogging turns on file logging when --debug, the config or
// QUILL_DEBUG asks for it. QUILL_LOG overrides the log path.
func initLogging(c config.Config) (func(), error) {
	if !c.Debug && os.Getenv("QUILL_DEBUG") == "" {
		return func() {}, nil
	}

	logPath := os.Getenv("QUILL_LOG")
	if logPath == "" {
		logPath = c.LogFile
	}

	var (
		cleanup func()
		err     error
	)
	if c.Host == config.HostTea {
		cleanup, err = log.InitWithTeaLog(logPath, "quill")
	} else {
		cleanup, err = log.Init(logPath)
	}
	if err != nil {
		return nil, err
	}
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		log.SetMinLevel(level)
	}

	log.Info(log.CatConfig, "Quill starting",
		"version", version, "host", c.Host, "config", v.ConfigFileUsed(), "log", logPath)
	return cleanup, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}
