package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/scopeplanner/cmd/cli/plan"
	"github.com/temirov/scopeplanner/internal/utils"
	"github.com/temirov/scopeplanner/internal/utils/flags"
)

const (
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level (debug, info, warn, error)."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	environmentPrefixConstant               = "SCOPEPLANNER"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	commandBuildErrorTemplateConstant       = "unable to build %s command: %w"
	defaultConfigurationSearchPathConstant  = "."
	rootCommandNameConstant                 = "planner"
	catalogCommandNameConstant              = "catalog"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  utils.LogLevel  `mapstructure:"log_level"`
	LogFormat utils.LogFormat `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() (*Application, error) {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	loggerProvider := func() *zap.Logger {
		return application.logger
	}

	planBuilder := plan.CommandBuilder{LoggerProvider: loggerProvider}
	rootCommand, planBuildError := planBuilder.Build()
	if planBuildError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, rootCommandNameConstant, planBuildError)
	}

	rootCommand.SilenceUsage = true
	rootCommand.SilenceErrors = true
	rootCommand.PersistentPreRunE = func(command *cobra.Command, arguments []string) error {
		return application.initializeConfiguration(command)
	}
	rootCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		fmt.Fprint(command.ErrOrStderr(), command.UsageString())
		return flagError
	})

	rootCommand.SetContext(context.Background())
	rootCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	rootCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	rootCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	catalogBuilder := plan.CatalogCommandBuilder{LoggerProvider: loggerProvider}
	catalogCommand, catalogBuildError := catalogBuilder.Build()
	if catalogBuildError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, catalogCommandNameConstant, catalogBuildError)
	}
	rootCommand.AddCommand(catalogCommand)

	application.rootCommand = rootCommand

	return application, nil
}

// SetOutputs redirects the report stream and the diagnostic stream. Logs are
// written to errorOutput.
func (application *Application) SetOutputs(output io.Writer, errorOutput io.Writer) {
	application.rootCommand.SetOut(output)
	application.rootCommand.SetErr(errorOutput)
	application.loggerFactory = utils.NewLoggerFactoryWithSink(errorOutput)
}

// Execute runs the command hierarchy with the process arguments.
func (application *Application) Execute() error {
	return application.ExecuteWithArguments(os.Args[1:])
}

// ExecuteWithArguments runs the command hierarchy with arguments and ensures
// logger flushing.
func (application *Application) ExecuteWithArguments(arguments []string) error {
	normalizedArguments := flags.NormalizeToggleArguments(application.rootCommand.Flags(), arguments)
	if normalizedArguments == nil {
		normalizedArguments = []string{}
	}
	application.rootCommand.SetArgs(normalizedArguments)

	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command.
func Execute() error {
	application, applicationError := NewApplication()
	if applicationError != nil {
		return applicationError
	}
	return application.Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		_ = application.configuration.Common.LogLevel.UnmarshalText([]byte(application.logLevelFlagValue))
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		_ = application.configuration.Common.LogFormat.UnmarshalText([]byte(application.logFormatFlagValue))
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		application.configuration.Common.LogLevel,
		application.configuration.Common.LogFormat,
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, string(application.configuration.Common.LogLevel)),
		zap.String(configurationLogFormatFieldConstant, string(application.configuration.Common.LogFormat)),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) flushLogger() error {
	if syncError := application.syncLoggerInstance(application.logger); syncError != nil {
		return syncError
	}
	return nil
}

func (application *Application) syncLoggerInstance(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}

	syncError := logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
