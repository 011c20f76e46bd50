package seq

import (
	"github.com/samber/lo"
)

// Map transforms every element, keeping length and order.
func Map[T, R any](s []T, fn func(T) R) []R {
	return lo.Map(s, func(item T, _ int) R {
		return fn(item)
	})
}

// Filter keeps the elements accepted by predicate in a new, densely indexed slice.
func Filter[T any](s []T, predicate func(T) bool) []T {
	return lo.Filter(s, func(item T, _ int) bool {
		return predicate(item)
	})
}

// Reduce folds s from the left. An empty s returns initial.
func Reduce[T, R any](s []T, initial R, fn func(acc R, item T) R) R {
	return lo.Reduce(s, func(acc R, item T, _ int) R {
		return fn(acc, item)
	}, initial)
}

// GroupBy buckets elements by key; each bucket keeps input order.
func GroupBy[T any, K comparable](s []T, keyFn func(T) K) map[K][]T {
	return lo.GroupBy(s, keyFn)
}

// IndexBy maps each key to its element. On duplicate keys the last element wins.
func IndexBy[T any, K comparable](s []T, keyFn func(T) K) map[K]T {
	return lo.KeyBy(s, keyFn)
}

// MapValues transforms the values of m and keeps its keys.
func MapValues[K comparable, V, R any](m map[K]V, fn func(V) R) map[K]R {
	return lo.MapValues(m, func(v V, _ K) R {
		return fn(v)
	})
}

// FilterValues keeps the entries of m whose value is accepted by predicate.
func FilterValues[K comparable, V any](m map[K]V, predicate func(V) bool) map[K]V {
	return lo.PickBy(m, func(_ K, v V) bool {
		return predicate(v)
	})
}
