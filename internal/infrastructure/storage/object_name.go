package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// objectName builds a unique key under folder with an extension derived from
// the content type.
func objectName(folder, contentType string) string {
	name := fmt.Sprintf("%s-%s", uuid.New().String(), time.Now().UTC().Format("20060102150405"))
	if folder = strings.Trim(folder, "/"); folder != "" {
		name = folder + "/" + name
	}

	switch contentType {
	case "image/jpeg", "image/jpg":
		return name + ".jpg"
	case "image/png":
		return name + ".png"
	case "image/gif":
		return name + ".gif"
	case "image/webp":
		return name + ".webp"
	default:
		return name + ".bin"
	}
}
