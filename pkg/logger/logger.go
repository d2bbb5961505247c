// Package logger is a thin structured-logging facade over slog. Handlers and
// services call it with a message plus loose key-value pairs; bare error
// values are accepted and keyed as "error".
package logger

import (
	"log/slog"
	"os"
)

var log = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Init sets the process-wide logger. Development gets human-readable text at
// debug level, everything else JSON at info level.
func Init(environment string) {
	if environment == "development" {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return
	}
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func Debug(msg string, args ...any) { log.Debug(msg, normalize(args)...) }
func Info(msg string, args ...any)  { log.Info(msg, normalize(args)...) }
func Warn(msg string, args ...any)  { log.Warn(msg, normalize(args)...) }
func Error(msg string, args ...any) { log.Error(msg, normalize(args)...) }

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize turns loose arguments into valid slog key-value pairs: errors
// become "error" attrs, stray trailing values are keyed as "value".
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+2)
	i := 0
	for i < len(args) {
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err)
			i++
			continue
		}
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i += 2
			continue
		}
		out = append(out, "value", args[i])
		i++
	}
	return out
}
