package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. /metrics is never
// compressed since promhttp negotiates its own encoding; extra paths can be
// excluded as well. Already compressed assets served by the docs UI are
// passed through.
func Compression(excludedPaths ...string) gin.HandlerFunc {
	paths := append([]string{"/metrics"}, excludedPaths...)
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths(paths),
		gzip.WithExcludedExtensions([]string{".png", ".gz", ".zip"}),
	)
}
