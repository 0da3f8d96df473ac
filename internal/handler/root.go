package handler

import "net/http"

// Root handles GET /.
// It returns a welcome message identifying the API.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, messageResponse{Message: "Schedule Management API"})
}
