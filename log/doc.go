/*
Package log implements the logging framework of b64 on top of seelog.

See https://github.com/cihub/seelog/wiki/Log-levels for an introduction to the
different logging levels.

Logging is disabled until Init, UseLogger or SetLogWriter is called, so the
library packages stay silent when they are used by other programs.

Errors are logged once, where they are created: the codec creates its typed
errors with log.Error(), which logs the error and returns it unchanged, so
callers can still match it with errors.Is and errors.As. Violated internal
invariants are reported with panic(log.Critical(...)).
*/
package log
