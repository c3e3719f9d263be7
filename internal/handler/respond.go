package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Memory threshold for multipart parsing; larger parts spill to temp files.
const formMemoryLimit = 32 << 20

const uploadDateLayout = "2006-01-02 15:04:05"

func now() string {
	return time.Now().Format(uploadDateLayout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func message(s string) map[string]string {
	return map[string]string{"message": s}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func serverError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("request failed")
	writeError(w, http.StatusInternalServerError, err.Error())
}

func formValues(r *http.Request) url.Values {
	if r.MultipartForm != nil {
		return url.Values(r.MultipartForm.Value)
	}
	return r.PostForm
}

// formHas reports field presence, distinguishing an absent field from an
// empty one. Section scanning stops on absence, not emptiness.
func formHas(r *http.Request, key string) bool {
	_, ok := formValues(r)[key]
	return ok
}

func formFile(r *http.Request, key string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if fhs := r.MultipartForm.File[key]; len(fhs) > 0 && fhs[0].Filename != "" {
		return fhs[0]
	}
	return nil
}
