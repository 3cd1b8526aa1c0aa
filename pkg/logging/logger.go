package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

var (
	Log = log.New()
)

func init() {
	Log.SetOutput(os.Stdout)
	Log.SetLevel(levelFromEnv())
	Log.SetFormatter(&log.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: true,
	})
}

func levelFromEnv() log.Level {
	if v := os.Getenv("CANTO_FIELD_LOG"); v != "" {
		if level, err := log.ParseLevel(v); err == nil {
			return level
		}
	}
	return log.DebugLevel
}
