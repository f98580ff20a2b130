package notify

import (
	"github.com/hashicorp/go-hclog"
)

// Log writes messages to an hclog logger, for headless hosts.
type Log struct {
	logger hclog.Logger
}

var _ Notifier = (*Log)(nil)

func NewLog(logger hclog.Logger) *Log {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Log{logger: logger.Named("notify")}
}

func (l *Log) Info(msg string)  { l.logger.Info(msg) }
func (l *Log) Error(msg string) { l.logger.Error(msg) }
