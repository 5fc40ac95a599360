// Package cache provides a generic LRU cache.
//
// The runtime uses it for values that are expensive to derive and likely
// to be requested again, such as interpolated morph shapes keyed by
// character and ratio:
//
//	frames := cache.New[Key, *Frame](256)
//	f := frames.GetOrCreate(key, func() *Frame { return build(key) })
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
