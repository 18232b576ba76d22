// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cihub/seelog"
)

var logger seelog.LoggerInterface

func init() {
	logger = seelog.Disabled
}

// prefixLen is the width of the command prefix shown in every log line.
const prefixLen = 5

const configFormat = `
<seelog type="sync" minlevel="%s">
	<outputs formatid="all">
		%s
		%s
	</outputs>
	<formats>
		<format id="all" format="%%UTCDate %%UTCTime [%-5s] [%%LEV] %%Msg%%n" />
	</formats>
</seelog>`

// Init initializes logging to the given level. If logDir is not empty a
// rolling logfile is written to that directory, if logToConsole is true
// the console output is enabled. Without any output logging stays disabled.
// cmdPrefix is shown in every line and may have at most 5 characters.
// An invalid level or prefix returns an error.
func Init(logLevel, cmdPrefix, logDir string, logToConsole bool) error {
	if _, found := seelog.LogLevelFromString(logLevel); !found {
		return fmt.Errorf("log: level '%s' is invalid", logLevel)
	}
	if len(cmdPrefix) > prefixLen {
		return fmt.Errorf("log: len(cmdPrefix) must be <= %d: \"%s\"", prefixLen, cmdPrefix)
	}
	// seelog refuses an empty outputs section
	if !logToConsole && logDir == "" {
		UseLogger(seelog.Disabled)
		return nil
	}
	var console, file string
	if logToConsole {
		console = "<console />"
	}
	if logDir != "" {
		file = fmt.Sprintf("<rollingfile type=\"size\" filename=\"%s\" maxsize=\"10485760\" maxrolls=\"3\" />",
			filepath.Join(logDir, filepath.Base(os.Args[0])+".log"))
	}
	config := fmt.Sprintf(configFormat, logLevel, console, file, cmdPrefix)
	newLogger, err := seelog.LoggerFromConfigAsString(config)
	if err != nil {
		return err
	}
	newLogger.SetAdditionalStackDepth(1)
	UseLogger(newLogger)
	Debugf("%s started (built with %s %s for %s/%s)", os.Args[0],
		runtime.Compiler, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// Flush flushes all pending messages.
func Flush() {
	logger.Flush()
}

// Critical logs v with level Critical. If v is a single error it is
// returned unchanged, otherwise a new error holding the message is returned.
func Critical(v ...interface{}) error {
	if len(v) == 1 {
		if err, ok := v[0].(error); ok {
			logger.Critical(err)
			return err
		}
	}
	return logger.Critical(v...)
}

// Criticalf logs a formatted message with level Critical and returns it as an
// error.
func Criticalf(format string, params ...interface{}) error {
	return logger.Criticalf(format, params...)
}

// Error logs v with level Error. If v is a single error it is returned
// unchanged, otherwise a new error holding the message is returned.
func Error(v ...interface{}) error {
	if len(v) == 1 {
		if err, ok := v[0].(error); ok {
			logger.Error(err)
			return err
		}
	}
	return logger.Error(v...)
}

// Errorf logs a formatted message with level Error and returns it as an
// error.
func Errorf(format string, params ...interface{}) error {
	return logger.Errorf(format, params...)
}

// Warn logs v with level Warn, see Error.
func Warn(v ...interface{}) error {
	if len(v) == 1 {
		if err, ok := v[0].(error); ok {
			logger.Warn(err)
			return err
		}
	}
	return logger.Warn(v...)
}

// Warnf logs a formatted message with level Warn and returns it as an error.
func Warnf(format string, params ...interface{}) error {
	return logger.Warnf(format, params...)
}

// Info logs v with level Info.
func Info(v ...interface{}) {
	logger.Info(v...)
}

// Infof logs a formatted message with level Info.
func Infof(format string, params ...interface{}) {
	logger.Infof(format, params...)
}

// Debug logs v with level Debug.
func Debug(v ...interface{}) {
	logger.Debug(v...)
}

// Debugf logs a formatted message with level Debug.
func Debugf(format string, params ...interface{}) {
	logger.Debugf(format, params...)
}

// UseLogger replaces the logger used by b64.
func UseLogger(newLogger seelog.LoggerInterface) {
	logger = newLogger
}

// SetLogWriter logs all levels to writer without any formatting.
func SetLogWriter(writer io.Writer) error {
	if writer == nil {
		return errors.New("log: nil writer")
	}
	newLogger, err := seelog.LoggerFromWriterWithMinLevel(writer, seelog.TraceLvl)
	if err != nil {
		return err
	}
	UseLogger(newLogger)
	return nil
}

// Disable turns logging off again.
func Disable() {
	logger = seelog.Disabled
}
