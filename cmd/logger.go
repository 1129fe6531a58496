package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger reports what the commands do on stderr, it never prints results.
var Logger = logrus.New()

func initLogger(level string, verbose bool) error {
	Logger.SetOutput(os.Stderr)
	Logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl := logrus.WarnLevel
	if level != "" {
		var err error
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	Logger.SetLevel(lvl)
	return nil
}
