package scripts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"EpicBackend/config"
	"EpicBackend/internal/upload"
)

var categoryFolders = []string{"case_studies", "events", "resources", "gallery"}

// RefreshThumbnails walks every category index and writes missing _thumb
// files for the images it references. Indexed files missing from disk are
// reported but the records are left alone; records without files are
// legitimate.
func RefreshThumbnails(cfg *config.Config) {
	for _, folder := range categoryFolders {
		indexPath := filepath.Join(cfg.StaticRoot, folder, "directory.json")
		data, err := os.ReadFile(indexPath)
		if err != nil {
			logrus.WithError(err).WithField("index", indexPath).Warn("skipping index")
			continue
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			logrus.WithError(err).WithField("index", indexPath).Warn("skipping unreadable index")
			continue
		}

		for _, public := range imagePaths(doc) {
			rel := strings.TrimPrefix(public, "/static/")
			src := filepath.Join(cfg.StaticRoot, filepath.FromSlash(rel))
			if _, err := os.Stat(src); err != nil {
				logrus.WithField("file", src).Warn("indexed file missing on disk")
				continue
			}
			if _, err := os.Stat(upload.ThumbPath(src)); err == nil {
				continue
			}
			if err := upload.WriteThumb(src); err != nil {
				logrus.WithError(err).WithField("file", src).Warn("thumbnail not written")
			}
		}
	}
}

// imagePaths collects every /static/ image reference in a decoded index
// document, whatever field it sits under.
func imagePaths(doc any) []string {
	var out []string
	switch v := doc.(type) {
	case map[string]any:
		for _, val := range v {
			out = append(out, imagePaths(val)...)
		}
	case []any:
		for _, val := range v {
			out = append(out, imagePaths(val)...)
		}
	case string:
		if strings.HasPrefix(v, "/static/") && upload.IsImage(v) && !strings.Contains(v, "_thumb") {
			out = append(out, v)
		}
	}
	return out
}
