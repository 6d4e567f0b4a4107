/*
Package config loads the ambient settings of swaggerfilter from the
environment and builds its diagnostic logger.

Variables:

	SWAGGERFILTER_LOG_LEVEL   logrus level, default "info"
	SWAGGERFILTER_LOG_FORMAT  "text" (default) or "json"

An optional dotenv file can be layered on top without mutating the process
environment:

	cfg, err := config.Load(".swaggerfilter.env")
	logger := cfg.NewLogger(os.Stderr, verbose)
	logger.Error("definition prefix needs to be provided")
	// ERROR: definition prefix needs to be provided
*/
package config
