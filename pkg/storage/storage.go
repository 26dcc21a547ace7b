// Package storage is the blob-storage collaborator used for product images.
// Callers generate a unique path before uploading so filenames never collide.
package storage

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlobStorage uploads files and resolves their public URLs.
type BlobStorage interface {
	Upload(filePath string, r io.Reader) error
	GetPublicURL(filePath string) string
}

// UniquePath builds a collision-free object path under dir from the original
// filename: timestamp plus a random token, keeping the original extension.
func UniquePath(dir, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	token := strings.Split(uuid.New().String(), "-")[0]
	return path.Join(dir, fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext))
}
