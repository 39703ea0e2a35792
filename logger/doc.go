// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logger configures the process-wide slog logger.

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	slog.Info("server starting", "port", cfg.Port)

Levels are debug, info, warn and error. Formats are text, json and auto;
auto writes text to a terminal and JSON when stderr is redirected.
*/
package logger
