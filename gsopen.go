package panbiom

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// SplitGoogleStoragePath splits gs://bucket/path/to/object into its bucket
// and object name.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d parts: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// MaybeOpenFromGoogleStorage opens path for reading. Paths beginning with
// gs:// are read from Google Storage through client, which must then be
// non-nil; anything else is opened from the local filesystem after expanding
// a leading ~/.
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, fmt.Errorf("%s: a Google Storage client is required for gs:// paths", path)
		}

		bucketName, pathName, err := SplitGoogleStoragePath(path)
		if err != nil {
			return nil, err
		}

		rdr, err := client.Bucket(bucketName).Object(pathName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}

		return rdr, nil
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expanded)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// OpenInput opens path locally or from Google Storage and transparently
// decompresses it.
func OpenInput(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	raw, err := MaybeOpenFromGoogleStorage(ctx, path, client)
	if err != nil {
		return nil, err
	}

	rc, _, err := MaybeDecompressReadCloser(raw)
	if err != nil {
		raw.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rc, nil
}

// NeedsGoogleStorage reports whether any of paths must be read through a
// Google Storage client.
func NeedsGoogleStorage(paths ...string) bool {
	for _, p := range paths {
		if strings.HasPrefix(p, "gs://") {
			return true
		}
	}

	return false
}
