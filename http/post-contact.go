package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/opsfront/intake-backend/httpjson"
	"github.com/opsfront/intake-backend/intake"
)

func (httpserver *HttpServer) postContact(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	// id, timestamp and status are assigned server-side; the request
	// shape deliberately has no place for them.
	type postContactRequest struct {
		ContactInfo    intake.ContactInfo    `json:"contactInfo"`
		ProjectDetails intake.ProjectDetails `json:"projectDetails"`
	}

	type postContactResponse struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
		Message string `json:"message"`
	}

	var request postContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w, "request body is not valid JSON", http.StatusBadRequest)
		return
	}

	subm, err := httpserver.intakeSrvc.Create(r.Context(),
		request.ContactInfo, request.ProjectDetails)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusOK, postContactResponse{
		Success: true,
		ID:      subm.ID,
		Message: "thank you for your inquiry, we will be in touch shortly",
	})
}
