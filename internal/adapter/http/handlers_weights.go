package adapthttp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"weighin/internal/domain"
)

func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listWeights(w, r)
	case http.MethodPost:
		s.createWeight(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listWeights(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	records, err := s.weights.ListWeights(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if records == nil {
		records = []domain.WeightRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) createWeight(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		Weight     float64     `json:"weight"`
		Unit       domain.Unit `json:"unit"`
		Note       string      `json:"note"`
		RecordedAt *time.Time  `json:"recordedAt"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	recordedAt := time.Time{}
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	result, err := s.weights.RecordWeight(r.Context(), user.ID, req.Weight, req.Unit, recordedAt, req.Note)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if result.NewAchievements == nil {
		result.NewAchievements = []domain.UnlockedAchievement{}
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleWeightByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r.Context())

	id := strings.TrimPrefix(r.URL.Path, "/weights/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, errors.New("invalid weight id"))
		return
	}

	deleted, err := s.weights.DeleteWeight(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, errors.New("weight record not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r.Context())

	unlocked, err := s.achievements.ListUnlocked(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if unlocked == nil {
		unlocked = []domain.UnlockedAchievement{}
	}
	writeJSON(w, http.StatusOK, unlocked)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r.Context())

	stats, err := s.weights.GetStats(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
