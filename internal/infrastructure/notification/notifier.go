package notification

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"servitec/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// Notifier is the notification sink behind the use cases: one structured line
// per user-facing event. The legacy system rendered these as toasts; here they
// are zerolog events a UI gateway can tail.

type Notifier struct {
	log zerolog.Logger
}

var _ interfaces.INotifier = (*Notifier)(nil)

// Options configures the notifier's underlying logger.
type Options struct {
	ServiceName string
	Level       zerolog.Level
	Output      io.Writer
}

func New(opts Options) *Notifier {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	log := zerolog.
		New(output).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(opts.Level)

	return &Notifier{log: log}
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(levelString); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}

func (n *Notifier) Info(_ context.Context, message string) {
	n.log.Info().Str("kind", "info").Msg(message)
}

func (n *Notifier) Error(_ context.Context, message string) {
	n.log.Warn().Str("kind", "error").Msg(message)
}
