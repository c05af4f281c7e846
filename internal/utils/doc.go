// Package utils exposes the ambient plumbing shared by every command.
//
// ConfigurationLoader layers embedded defaults, an optional configuration
// file, and SCOPEPLANNER_* environment variables through Viper.
// LoggerFactory builds zap loggers for the configured level and format.
package utils
