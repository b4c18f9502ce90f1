package resilience

import "golang.org/x/sync/singleflight"

// Group deduplicates concurrent calls for the same key and returns typed results.
type Group[T any] struct {
	g singleflight.Group
}

func (g *Group[T]) Do(key string, fn func() (T, error)) (T, error, bool) {
	out, err, shared := g.g.Do(key, func() (any, error) {
		return fn()
	})
	value, _ := out.(T)
	return value, err, shared
}

func (g *Group[T]) Forget(key string) {
	g.g.Forget(key)
}
