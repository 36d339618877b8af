package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/opsfront/intake-backend/httpjson"
	"github.com/opsfront/intake-backend/intake"
)

func (httpserver *HttpServer) getContacts(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	subms, err := httpserver.intakeSrvc.List(r.Context(), adminKey(r))
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	// full records, newest first; never null for an empty store
	if subms == nil {
		subms = []intake.Submission{}
	}
	httpjson.WriteJson(w, http.StatusOK, subms)
}
