package upload

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

const thumbSuffix = "_thumb"

// ThumbPath returns the sibling thumbnail path for an image file.
func ThumbPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + thumbSuffix + ext
}

// IsImage reports whether the path looks like a raster image we can resize.
func IsImage(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// WriteThumb decodes the image at srcPath and writes a bounded-size thumbnail
// next to it. Non-image files and already-thumbnailed names are skipped.
func WriteThumb(srcPath string) error {
	if !IsImage(srcPath) {
		return nil
	}
	if strings.Contains(filepath.Base(srcPath), thumbSuffix) {
		return nil
	}

	file, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return err
	}
	if format != "jpeg" && format != "png" {
		return fmt.Errorf("unsupported format %q for file %s", format, srcPath)
	}

	m := resize.Thumbnail(480, 480, img, resize.Lanczos3)

	out, err := os.Create(ThumbPath(srcPath))
	if err != nil {
		return err
	}
	defer out.Close()

	if format == "png" {
		return png.Encode(out, m)
	}
	return jpeg.Encode(out, m, nil)
}
