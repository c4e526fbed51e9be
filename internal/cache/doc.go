// Package cache holds rendered logo bodies keyed by their canonical request
// parameters.
//
// A generated logo is a pure function of its parameters, so a body rendered
// once can be served again without regenerating it. The cache is split into
// 16 shards, each with its own mutex and LRU order, and is bounded both by
// entry count and by total body bytes per shard.
//
//	c := cache.New(256, 4<<20)
//	e, hit, err := c.GetOrCreate(key, func() (cache.Entry, error) {
//	    body, err := svg.Render(logo, opts)
//	    return cache.Entry{ContentType: "image/svg+xml", Body: body}, err
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
