package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"EpicBackend/config"
	"EpicBackend/internal/handler"
	"EpicBackend/internal/model"
	"EpicBackend/internal/repository/jsonfile"
	"EpicBackend/internal/service"
	"EpicBackend/internal/upload"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("request handled")
	})
}

func maxBodyMiddleware(limit int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// New builds the stores under cfg.StaticRoot, bootstraps the index documents,
// and wires every route.
func New(cfg *config.Config) (*mux.Router, error) {
	root := cfg.StaticRoot

	caseStudyRepo := jsonfile.NewDirectory[*model.CaseStudy](filepath.Join(root, "case_studies", "directory.json"), "case_studies")
	eventRepo := jsonfile.NewDirectory[*model.Event](filepath.Join(root, "events", "directory.json"), "events")
	resourceRepo := jsonfile.NewDirectory[*model.Resource](filepath.Join(root, "resources", "directory.json"), "resources")
	albumRepo := jsonfile.NewDirectory[*model.Album](filepath.Join(root, "gallery", "directory.json"), "albums")
	rosterRepo := jsonfile.NewRoster(filepath.Join(root, "team", "partners.json"))

	bootstraps := []interface{ Bootstrap() error }{
		caseStudyRepo, eventRepo, resourceRepo, albumRepo, rosterRepo,
	}
	for _, b := range bootstraps {
		if err := b.Bootstrap(); err != nil {
			return nil, err
		}
	}

	caseStudies := service.NewCatalog[*model.CaseStudy](caseStudyRepo)
	events := service.NewCatalog[*model.Event](eventRepo)
	resources := service.NewCatalog[*model.Resource](resourceRepo)
	albums := service.NewCatalog[*model.Album](albumRepo)
	team := service.NewTeam(rosterRepo)

	caseStudySaver := upload.NewSaver(filepath.Join(root, "case_studies"), cfg.BaseURL+"/static/case_studies", cfg.MaxFileSize)
	eventSaver := upload.NewSaver(filepath.Join(root, "events"), cfg.BaseURL+"/static/events", cfg.MaxFileSize)
	resourceSaver := upload.NewSaver(filepath.Join(root, "resources"), cfg.BaseURL+"/static/resources", cfg.MaxFileSize)
	gallerySaver := upload.NewSaver(filepath.Join(root, "gallery"), cfg.BaseURL+"/static/gallery", cfg.MaxFileSize)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(maxBodyMiddleware(cfg.MaxContentLength))

	r.HandleFunc("/upload_case_study", handler.UploadCaseStudy(caseStudies, caseStudySaver)).Methods("POST")
	r.HandleFunc("/upload_event", handler.UploadEvent(events, eventSaver)).Methods("POST")
	r.HandleFunc("/upload_resource", handler.UploadResource(resources, resourceSaver)).Methods("POST")
	r.HandleFunc("/upload_photo_album", handler.UploadPhotoAlbum(albums, gallerySaver)).Methods("POST")

	r.HandleFunc("/get_case_studies", handler.List(caseStudies, "case_studies")).Methods("GET")
	r.HandleFunc("/get_events", handler.List(events, "events")).Methods("GET")
	r.HandleFunc("/get_resources", handler.List(resources, "resources")).Methods("GET")
	r.HandleFunc("/get_photo_albums", handler.List(albums, "albums")).Methods("GET")

	r.HandleFunc("/delete_case_study/{number}", handler.Delete(caseStudies)).Methods("DELETE")
	r.HandleFunc("/delete_event/{number}", handler.Delete(events)).Methods("DELETE")
	r.HandleFunc("/delete_resource/{number}", handler.Delete(resources)).Methods("DELETE")
	r.HandleFunc("/delete_photo_album/{number}", handler.Delete(albums)).Methods("DELETE")

	r.HandleFunc("/handle_login", handler.HandleLogin(cfg)).Methods("POST")

	r.HandleFunc("/get_partners", handler.GetPartners(team)).Methods("GET")
	r.HandleFunc("/update_partner", handler.UpdatePartner(team)).Methods("POST")
	r.HandleFunc("/add_team_member", handler.AddTeamMember(team)).Methods("POST")
	r.HandleFunc("/update_team_member", handler.UpdateTeamMember(team)).Methods("POST")
	r.HandleFunc("/delete_team_member", handler.DeleteTeamMember(team)).Methods("POST")

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(root))))

	return r, nil
}
