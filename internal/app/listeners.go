package app

import "go.uber.org/zap"

// OrderCompletionLogger returns a listener that logs once each time an order
// reaches the complete screen.
func OrderCompletionLogger(logger *zap.Logger) Listener {
	var complete bool
	return func(v View) {
		if v.OrderComplete && !complete && v.Receipt != nil {
			logger.Info("order complete",
				zap.Int("lines", len(v.Receipt.Lines)),
				zap.Float64("total", v.Receipt.Totals.Total),
				zap.Time("submitted_at", v.Receipt.SubmittedAt))
		}
		complete = v.OrderComplete
	}
}
