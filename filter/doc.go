// Package filter holds named text filters.
//
// A Registry maps names such as "stripTags" and "stripNonAlphanumeric" to
// plain string functions. The util service reaches its filters through a
// registry so callers can swap or add implementations.
package filter
