package services

import "context"

// Service is a single application use case. Decorators wrap it to add
// behavior around the core one.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
