package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// Allowed reports whether the client filename carries an accepted extension.
func Allowed(filename string) bool {
	return allowedExtensions[Ext(filename)]
}

// Ext returns the lowercased extension of a client filename without the dot.
func Ext(filename string) string {
	ext := path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Saver writes accepted uploads into one category folder and hands back their
// public /static/... paths. Stored names are fully synthesized from the entity
// number and role; no client-controlled bytes reach the filesystem.
type Saver struct {
	dir       string
	publicDir string
	maxBytes  int64
}

func NewSaver(dir, publicDir string, maxBytes int64) *Saver {
	return &Saver{dir: dir, publicDir: publicDir, maxBytes: maxBytes}
}

// Save stores the upload as {base}.{ext} and returns its public path. A file
// with a disallowed extension or over the size cap is skipped: the returned
// path is empty and err is nil. Only I/O failures are errors.
func (s *Saver) Save(fh *multipart.FileHeader, base string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	if !Allowed(fh.Filename) {
		logrus.WithField("filename", fh.Filename).Warn("skipping upload with disallowed extension")
		return "", nil
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		logrus.WithFields(logrus.Fields{"filename": fh.Filename, "size": fh.Size}).Warn("skipping upload over size limit")
		return "", nil
	}

	name := fmt.Sprintf("%s.%s", base, Ext(fh.Filename))
	dst := filepath.Join(s.dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	// Thumbnails are a convenience for gallery views; a failure never blocks
	// the upload itself.
	if err := WriteThumb(dst); err != nil {
		logrus.WithField("file", dst).WithError(err).Debug("no thumbnail written")
	}

	return s.publicDir + "/" + name, nil
}
