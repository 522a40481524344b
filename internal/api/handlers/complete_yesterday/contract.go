package complete_yesterday

import "context"

type SweepWorker interface {
	RunOnce(ctx context.Context, trigger string) ([]int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
