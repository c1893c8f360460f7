// Package cache provides a generic, thread-safe LRU cache with optional idle
// expiry.
//
// The contact module keeps one form per visitor session in it: the cache
// bounds memory, expires abandoned forms and closes them through the evict
// callback.
//
//	forms := cache.NewLRUCache[string, *contact.Form](1024,
//		cache.WithTTL[string, *contact.Form](30*time.Minute),
//		cache.WithEvictCallback(func(_ string, f *contact.Form) { f.Close() }),
//	)
//	form, created := forms.GetOrCreate(sessionID, newForm)
//
// Evict callbacks run after the internal lock is released. Get, Put,
// GetOrCreate and Remove are O(1); Prune walks only the expired tail.
package cache
