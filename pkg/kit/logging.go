package kit

import "go.uber.org/zap"

// NewLogger builds the process-wide JSON logger. Every line carries the
// service name so log aggregation can tell this backend apart from the
// notifier consuming its alerts.
func NewLogger(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}
	l, _ := cfg.Build()
	return l
}
