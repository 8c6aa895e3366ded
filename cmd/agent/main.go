package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.2.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "ifcfg-agent",
		Short: "ifcfg-agent resolves declarative interface descriptions into network service configuration",
	}
	rootCmd.AddCommand(newApplyCommand(), newServeCommand(), newVersionCommand())

	cobra.CheckErr(rootCmd.Execute())
}

// newLogger builds the shared logrus logger, honouring LOG_LEVEL.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr != "" {
		logLevel, err := logrus.ParseLevel(logLevelStr)
		if err != nil {
			logger.WithError(err).Warnf("Unknown LOG_LEVEL value: %s. Using default Info level.", logLevelStr)
			logger.SetLevel(logrus.InfoLevel)
		} else {
			logger.SetLevel(logLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
