package handler

import (
	"encoding/json"
	"net/http"
)

// languageBody is the JSON shape for both GET and PUT /language.
type languageBody struct {
	Language string `json:"language"`
}

// GetLanguage handles GET /language.
func (s *Server) GetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languageBody{Language: s.langs.Code()})
}

// SetLanguage handles PUT /language.
// Only exact supported codes are accepted; see i18n.Codes.
func (s *Server) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var body languageBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body is required", nil)
		return
	}

	if err := s.langs.Set(r.Context(), body.Language); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, languageBody{Language: body.Language})
}
