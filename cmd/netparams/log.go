package main

import (
	"os"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/headerstore"
	"github.com/vulpemventures/go-netparams/retarget"
)

// backendLog is the logging backend used to create all subsystem loggers.
var backendLog = btclog.NewBackend(os.Stderr)

var (
	rtgtLog = backendLog.Logger("RTGT")
	hdrsLog = backendLog.Logger("HDRS")
	mainLog = backendLog.Logger("MAIN")
)

var subsystemLoggers = map[string]btclog.Logger{
	"RTGT": rtgtLog,
	"HDRS": hdrsLog,
	"MAIN": mainLog,
}

func init() {
	retarget.UseLogger(rtgtLog)
	headerstore.UseLogger(hdrsLog)
}

// setLogLevels sets the logging level for all subsystems.
func setLogLevels(level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return errors.Errorf("invalid log level %s", level)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(lvl)
	}
	return nil
}
