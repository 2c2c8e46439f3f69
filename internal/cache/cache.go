// Package cache provides expiry-based housekeeping for localized cache artifacts.
package cache

import (
	"os"
	"time"

	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/where"
)

// TTL is the retention period for cache artifacts. Entries older than this
// are pruned on startup.
const TTL = 7 * 24 * time.Hour

// CollectGarbage initializes an asynchronous background task to prune expired cache entries from the filesystem.
func CollectGarbage() {
	go func() {
		fs := filesystem.API()
		_ = fs.Walk(where.Cache(), func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if time.Since(info.ModTime()) > TTL {
				_ = fs.Remove(path)
			}
			return nil
		})
	}()
}
