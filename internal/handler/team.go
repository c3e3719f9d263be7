package handler

import (
	"net/http"

	"EpicBackend/internal/model"
	"EpicBackend/internal/service"
)

func GetPartners(s service.Team) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partners, err := s.Partners()
		if err != nil {
			serverError(w, err)
			return
		}
		if partners == nil {
			partners = []model.Partner{}
		}
		writeJSON(w, http.StatusOK, partners)
	}
}

func UpdatePartner(s service.Team) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := s.UpdatePartner(
			r.FormValue("partner_id"),
			r.FormValue("name"),
			r.FormValue("description"),
		)
		if err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Partner updated successfully"))
	}
}

func memberFromForm(r *http.Request) model.Member {
	return model.Member{
		Name:       r.FormValue("name"),
		Role:       r.FormValue("role"),
		Department: r.FormValue("department"),
		Bio:        r.FormValue("bio"),
		Email:      r.FormValue("email"),
		LinkedIn:   r.FormValue("linkedin"),
		Image:      r.FormValue("image"),
	}
}

func AddTeamMember(s service.Team) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.AddMember(r.FormValue("partner_id"), memberFromForm(r)); err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Team member added successfully"))
	}
}

func UpdateTeamMember(s service.Team) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := s.UpdateMember(r.FormValue("partner_id"), r.FormValue("member_id"), memberFromForm(r))
		if err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Team member updated successfully"))
	}
}

func DeleteTeamMember(s service.Team) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := s.DeleteMember(r.FormValue("partner_id"), r.FormValue("member_id"))
		if err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, message("Team member deleted successfully"))
	}
}
