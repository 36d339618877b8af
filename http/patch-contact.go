package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/opsfront/intake-backend/httpjson"
	"github.com/opsfront/intake-backend/intake"
	"github.com/opsfront/intake-backend/intake/intakesrvc"
)

func (httpserver *HttpServer) patchContact(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type patchContactRequest struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}

	var request patchContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w, "request body is not valid JSON", http.StatusBadRequest)
		return
	}

	subm, err := httpserver.intakeSrvc.Update(r.Context(), adminKey(r), intakesrvc.UpdateParams{
		ID:     chi.URLParam(r, "id"),
		Status: intake.Status(request.Status),
		Notes:  request.Notes,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusOK, subm)
}
