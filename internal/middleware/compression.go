package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that accept it.
// The metrics endpoint negotiates its own encoding and is skipped.
func Compression(excludedPaths ...string) gin.HandlerFunc {
	return gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths(append([]string{"/metrics"}, excludedPaths...)),
	)
}
