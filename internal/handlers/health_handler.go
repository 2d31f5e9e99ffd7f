package handlers

import "net/http"

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSONMessage(w, http.StatusOK, "campaign draft service")
}

// Health handles GET /health. Sessions live in memory, so there is no
// downstream dependency to check.
// @Tags Health
// @Summary Liveness check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "route not found")
}
