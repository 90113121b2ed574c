// Package analyze runs seqan's commands: it reads FASTA files, queries the
// sequence engine and writes results to the terminal or a JSON file.
package analyze

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jjtimmons/seqan/config"
)

// logger is for logging to Stderr (without an annoying timestamp)
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "seqan",
	Level:  log.InfoLevel,
})

// setLogLevel applies the verbose flag or the log-level setting, the flag
// taking precedence.
func setLogLevel(conf *config.Config) {
	if conf.Verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}

	level, err := log.ParseLevel(strings.ToLower(conf.LogLevel))
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log-level in settings, defaulting to info", "provided", conf.LogLevel)
		return
	}
	logger.SetLevel(level)
}
