package planning

import "errors"

var (
	// ErrCacheGet возвращается при ошибке чтения из кеша
	ErrCacheGet = errors.New("planning.cache: failed to get value")

	// ErrCacheSet возвращается при ошибке записи в кеш
	ErrCacheSet = errors.New("planning.cache: failed to set value")

	// ErrCacheInvalidate возвращается при ошибке инвалидации кеша
	ErrCacheInvalidate = errors.New("planning.cache: failed to invalidate")
)
