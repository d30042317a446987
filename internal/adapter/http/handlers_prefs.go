package adapthttp

import (
	"net/http"

	"weighin/internal/app"
	"weighin/internal/domain"
)

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getPreferences(w, r)
	case http.MethodPut:
		s.updatePreferences(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) getPreferences(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	prefs, err := s.prefs.Get(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) updatePreferences(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		PreferredUnit *domain.Unit `json:"preferredUnit"`
		GoalWeight    *float64     `json:"goalWeight"`
		ClearGoal     bool         `json:"clearGoal"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	prefs, err := s.prefs.Update(r.Context(), user.ID, app.PreferencesUpdate{
		PreferredUnit: req.PreferredUnit,
		GoalWeight:    req.GoalWeight,
		ClearGoal:     req.ClearGoal,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		user := userFromContext(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{
			"id":          user.ID,
			"username":    user.Username,
			"displayName": user.DisplayName,
			"isAdmin":     user.IsAdmin,
		})
	case http.MethodPut:
		user := userFromContext(r.Context())

		var req struct {
			DisplayName string `json:"displayName"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.authSvc.UpdateDisplayName(r.Context(), user.ID, req.DisplayName); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
