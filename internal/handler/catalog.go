package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"EpicBackend/internal/model"
	"EpicBackend/internal/service"
	"EpicBackend/internal/upload"
)

// numbered is the slice of the catalog surface the upload handlers need to
// resolve an entity number.
type numbered interface {
	NextNumber() (string, error)
}

// entityNumber prefers a caller-supplied number (an edit resubmits the number
// it is editing) and otherwise assigns the next free one.
func entityNumber(r *http.Request, field string, s numbered) (string, error) {
	if n := r.FormValue(field); n != "" {
		return n, nil
	}
	return s.NextNumber()
}

func parseSections(r *http.Request, sv *upload.Saver, prefix string) ([]model.Section, error) {
	sections := []model.Section{}
	for i := 0; ; i++ {
		headingKey := fmt.Sprintf("section_%d_heading", i)
		if !formHas(r, headingKey) {
			break
		}
		sec := model.Section{
			Heading: r.FormValue(headingKey),
			Body:    r.FormValue(fmt.Sprintf("section_%d_body", i)),
		}
		if fh := formFile(r, fmt.Sprintf("section_%d_image", i)); fh != nil {
			p, err := sv.Save(fh, fmt.Sprintf("%s_section_%d", prefix, i))
			if err != nil {
				return nil, err
			}
			sec.Image = p
		} else if existing := r.FormValue(fmt.Sprintf("section_%d_existing_image", i)); existing != "" {
			sec.Image = existing
		}
		if sec.Heading != "" || sec.Body != "" || sec.Image != "" {
			sections = append(sections, sec)
		}
	}
	return sections, nil
}

func UploadCaseStudy(s service.Catalog[*model.CaseStudy], sv *upload.Saver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(formMemoryLimit); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !formHas(r, "title") {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		number, err := entityNumber(r, "case_study_number", s)
		if err != nil {
			serverError(w, err)
			return
		}

		cs := &model.CaseStudy{
			CaseStudyNumber: number,
			Title:           r.FormValue("title"),
			Location:        r.FormValue("location"),
			Date:            r.FormValue("date"),
			Category:        r.FormValue("category"),
			UploadDate:      now(),
			Description:     r.FormValue("description"),
		}

		if fh := formFile(r, "cover_image"); fh != nil {
			p, err := sv.Save(fh, fmt.Sprintf("case_study_%s_cover", number))
			if err != nil {
				serverError(w, err)
				return
			}
			if p != "" {
				cs.CoverImage = &p
			}
		}
		if fh := formFile(r, "pdf_file"); fh != nil {
			p, err := sv.Save(fh, fmt.Sprintf("case_study_%s", number))
			if err != nil {
				serverError(w, err)
				return
			}
			if p != "" {
				cs.PDFFile = &p
			}
		}

		sections, err := parseSections(r, sv, "case_study_"+number)
		if err != nil {
			serverError(w, err)
			return
		}
		cs.Sections = sections

		if err := s.Upsert(cs); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Upload successful"))
	}
}

func UploadEvent(s service.Catalog[*model.Event], sv *upload.Saver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(formMemoryLimit); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !formHas(r, "title") {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		number, err := entityNumber(r, "event_number", s)
		if err != nil {
			serverError(w, err)
			return
		}

		ev := &model.Event{
			EventNumber:      number,
			Title:            r.FormValue("title"),
			Date:             r.FormValue("date"),
			Location:         r.FormValue("location"),
			Type:             r.FormValue("type"),
			Status:           r.FormValue("status"),
			Description:      r.FormValue("description"),
			UploadDate:       now(),
			RegistrationLink: r.FormValue("registration_link"),
		}
		if ev.Status == "" {
			ev.Status = "Upcoming"
		}

		if fh := formFile(r, "cover_image"); fh != nil {
			p, err := sv.Save(fh, fmt.Sprintf("event_%s_cover", number))
			if err != nil {
				serverError(w, err)
				return
			}
			if p != "" {
				ev.CoverImage = &p
			}
		}

		sections, err := parseSections(r, sv, "event_"+number)
		if err != nil {
			serverError(w, err)
			return
		}
		ev.Sections = sections

		if err := s.Upsert(ev); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Upload successful"))
	}
}

func UploadResource(s service.Catalog[*model.Resource], sv *upload.Saver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(formMemoryLimit); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !formHas(r, "title") {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		number, err := entityNumber(r, "resource_number", s)
		if err != nil {
			serverError(w, err)
			return
		}

		res := &model.Resource{
			ResourceNumber: number,
			Title:          r.FormValue("title"),
			Type:           r.FormValue("type"),
			Description:    r.FormValue("description"),
			UploadDate:     now(),
			DownloadSize:   r.FormValue("download_size"),
		}

		if fh := formFile(r, "resource_file"); fh != nil {
			p, err := sv.Save(fh, fmt.Sprintf("resource_%s", number))
			if err != nil {
				serverError(w, err)
				return
			}
			if p != "" {
				res.File = &p
			}
		}

		sections, err := parseSections(r, sv, "resource_"+number)
		if err != nil {
			serverError(w, err)
			return
		}
		res.Sections = sections

		if err := s.Upsert(res); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Upload successful"))
	}
}

func UploadPhotoAlbum(s service.Catalog[*model.Album], sv *upload.Saver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(formMemoryLimit); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !formHas(r, "title") {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		number, err := entityNumber(r, "album_number", s)
		if err != nil {
			serverError(w, err)
			return
		}

		album := &model.Album{
			AlbumNumber: number,
			Title:       r.FormValue("title"),
			Date:        r.FormValue("date"),
			Description: r.FormValue("description"),
			UploadDate:  now(),
		}

		if fh := formFile(r, "cover_image"); fh != nil {
			p, err := sv.Save(fh, fmt.Sprintf("album_%s_cover", number))
			if err != nil {
				serverError(w, err)
				return
			}
			if p != "" {
				album.CoverImage = &p
			}
		}

		photos := []string{}
		if r.MultipartForm != nil {
			for i, fh := range r.MultipartForm.File["photos"] {
				p, err := sv.Save(fh, fmt.Sprintf("album_%s_photo_%d", number, i))
				if err != nil {
					serverError(w, err)
					return
				}
				if p != "" {
					photos = append(photos, p)
				}
			}
		}

		// Editing an album keeps the photos already stored and appends the
		// newly uploaded ones.
		if r.FormValue("is_edit") == "true" && formHas(r, "existing_photos") {
			existing := []string{}
			if err := json.Unmarshal([]byte(r.FormValue("existing_photos")), &existing); err != nil {
				serverError(w, err)
				return
			}
			photos = append(existing, photos...)
		}
		album.Photos = photos

		if err := s.Upsert(album); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Upload successful"))
	}
}

// List serves a category index, optionally trimmed to the last ?limit
// records. Invalid limit values are ignored.
func List[T model.Record](s service.Catalog[T], listKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		items, err := s.List(limit)
		if err != nil {
			serverError(w, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, http.StatusOK, map[string][]T{listKey: items})
	}
}

// Delete removes a record by its number. Unknown numbers still succeed.
func Delete[T model.Record](s service.Catalog[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := mux.Vars(r)["number"]
		if err := s.Delete(number); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Delete successful"))
	}
}
