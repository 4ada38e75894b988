package main

import (
	"errors"
	"io"
	"os"

	"github.com/itsatony/go-formatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cliState is shared by the commands of one invocation
type cliState struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	v          *viper.Viper
	configFile string
	logger     *zap.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	st := &cliState{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           CLIName,
		Short:         CLIShort,
		Long:          CLILong,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return st.loadConfig()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&st.configFile, FlagConfig, "", "config file (default .formatty.yaml, or FORMATTY_CONFIG_FILE)")
	pf.String(FlagLocale, "", "locale for the n presentation type, e.g. de or en-US")
	pf.StringP(FlagLogLevel, FlagLogLevelShort, FlagDefaultLogLevel, "log level (debug, info, warn, error)")
	pf.Int(FlagCacheSize, formatty.DefaultCacheSize, "renderer cache size, 0 for unbounded")
	pf.String(FlagUndefinedText, formatty.DefaultUndefinedText, "text rendered for fields without an argument")

	bindConfigFlags(st.v, pf)

	root.AddCommand(
		newRenderCmd(st),
		newTokenizeCmd(st),
		newSpecCmd(st),
		newVersionCmd(st),
	)
	return root
}

// configFlags maps config keys to the persistent flags that override them
var configFlags = map[string]string{
	ConfigKeyLocale:        FlagLocale,
	ConfigKeyLogLevel:      FlagLogLevel,
	ConfigKeyCacheSize:     FlagCacheSize,
	ConfigKeyUndefinedText: FlagUndefinedText,
}

// bindConfigFlags lets a flag override the config file and environment, but
// only when it is set on the command line.
func bindConfigFlags(v *viper.Viper, fs *pflag.FlagSet) {
	for key, name := range configFlags {
		if f := fs.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// loadConfig reads the config file and environment, then builds the logger.
//
// Config file priority (highest to lowest):
//  1. --config flag
//  2. FORMATTY_CONFIG_FILE environment variable
//  3. .formatty.yaml in the current directory
//
// A missing default file is not an error; a missing explicit one is.
func (st *cliState) loadConfig() error {
	v := st.v
	if st.configFile != "" {
		v.SetConfigFile(st.configFile)
	} else if envFile := os.Getenv(ConfigEnvFile); envFile != "" {
		v.SetConfigFile(envFile)
	} else {
		v.AddConfigPath(ConfigDefaultPath)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
	}

	v.SetEnvPrefix(ConfigEnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return newCLIError(ExitCodeInputError, ErrMsgReadConfigFailed, err)
		}
	}

	logger, err := newLogger(v.GetString(ConfigKeyLogLevel), st.stderr)
	if err != nil {
		return err
	}
	st.logger = logger

	logger.Debug(LogMsgConfigLoaded,
		zap.String(LogFieldConfigFile, v.ConfigFileUsed()),
		zap.String(LogFieldLocale, v.GetString(ConfigKeyLocale)),
		zap.Int(LogFieldCacheSize, v.GetInt(ConfigKeyCacheSize)),
	)
	return nil
}

// newEngine builds the formatting engine from the loaded configuration
func (st *cliState) newEngine() (*formatty.Engine, error) {
	opts := []formatty.Option{
		formatty.WithLogger(st.logger),
		formatty.WithCacheSize(st.v.GetInt(ConfigKeyCacheSize)),
		formatty.WithUndefinedText(st.v.GetString(ConfigKeyUndefinedText)),
	}
	if locale := st.v.GetString(ConfigKeyLocale); locale != "" {
		opts = append(opts, formatty.WithLocaleName(locale))
	}

	engine, err := formatty.New(opts...)
	if err != nil {
		return nil, newCLIError(ExitCodeUsageError, ErrMsgInvalidConfig, err)
	}
	return engine, nil
}

// newLogger writes console-encoded logs at level and above to w
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, newCLIError(ExitCodeUsageError, ErrMsgInvalidLogLevel, err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
