// Package cache provides a small generic LRU cache.
//
// The HTTP surface keeps the rendered exports of the current scene in a
// Cache keyed by scene revision and format, so repeated downloads of a
// static scene skip playback:
//
//	exports := cache.New[cache.ExportKey, []byte](16)
//	exports.Set(cache.ExportKey{Revision: 3, Format: "svg"}, data)
//	data, ok := exports.Get(cache.ExportKey{Revision: 3, Format: "svg"})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
