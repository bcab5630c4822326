// Package cache provides the bounded LRU cache the frame composer uses to
// keep scaled sprite variants between frames.
//
//	c := cache.New[variantKey, *pixart.Sprite](64)
//	s := c.GetOrCreate(key, func() *pixart.Sprite { return resize(...) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
