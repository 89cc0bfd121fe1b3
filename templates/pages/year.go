package pages

import (
	"context"
	"time"
)

type yearKey struct{}

// WithYear fixes the copyright year, mainly for tests
func WithYear(ctx context.Context, y int) context.Context {
	return context.WithValue(ctx, yearKey{}, y)
}

func year(ctx context.Context) int {
	if y, ok := ctx.Value(yearKey{}).(int); ok {
		return y
	}
	return time.Now().Year()
}
