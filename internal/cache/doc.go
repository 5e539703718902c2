// Package cache provides a generic least-recently-used cache.
//
//	c := cache.New[string, *Texture](64)
//	c.Set("sky.png", tex)
//	tex, ok := c.Get("sky.png")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
