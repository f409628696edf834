package logger

import (
	"context"

	eh "github.com/looplab/eventhorizon"
	"github.com/sirupsen/logrus"
)

func Logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "contract-service")
}

// CommandLogger is command bus middleware that logs every dispatched command.
func CommandLogger(h eh.CommandHandler) eh.CommandHandler {
	return eh.CommandHandlerFunc(func(ctx context.Context, command eh.Command) error {
		Logger().Debugf("CMD %s %s", command.CommandType(), command.AggregateID())
		return h.HandleCommand(ctx, command)
	})
}
