package interfaces

import "context"

// INotifier is the notification sink consumed by the use cases: one line per
// validation failure and per successful mutation, fire-and-forget. The core
// never observes a return value.

type INotifier interface {
	Info(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
