package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"sync"

	"aarohan/logging"
)

// Static assets that get a cache-busting version
const (
	AssetCSS         = "css/app.css"
	AssetCourtroomJS = "js/courtroom.js"
)

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		versions := make(map[string]string)
		for _, asset := range []string{AssetCSS, AssetCourtroomJS} {
			version := computeFileHash(staticDir + "/" + asset)
			if version == "" {
				version = "1"
			}
			versions[asset] = version
		}
		assetVersions = versions
		logging.L().Infof("[INFO] Asset versions initialized: %d files", len(versions))
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		logging.L().Warnf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		logging.L().Warnf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetURL returns the versioned URL of a static asset.
// The version is computed once at startup; ctx keeps the signature in line with other view helpers.
func AssetURL(ctx context.Context, asset string) string {
	version := "1"
	if v, ok := assetVersions[asset]; ok {
		version = v
	}
	return "/static/" + asset + "?v=" + version
}
