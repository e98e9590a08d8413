// Package telemetry provides observability for the plancheck service.
//
// # Components
//
//   - logging: structured logging built on log/slog
//   - metrics: Prometheus metrics collection
//
// # Usage
//
//	logger, err := logging.Setup(cfg.Telemetry.Logging)
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.Evaluation.RecordEvaluation("ok", report.PassRate, duration)
package telemetry
