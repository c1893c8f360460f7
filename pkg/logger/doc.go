// Package logger builds slog loggers for landkit and holds the attribute
// helpers used across the code base so keys stay consistent.
//
// New takes functional options. WithEnvironment picks the profile for the
// deployment stage, WithConfig applies LOG_LEVEL and LOG_FORMAT on top, and
// WithContextExtractors injects request scoped values on every record:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "landkit"),
//		logger.WithConfig(cfg.Log),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "contact submission delivered",
//		logger.Site("payflow"),
//		logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
