package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/opsfront/intake-backend/httpjson"
	"github.com/opsfront/intake-backend/intake/intakesrvc"
)

type HttpServer struct {
	intakeSrvc *intakesrvc.IntakeSrvc
	router     *chi.Mux
}

func NewHttpServer(intakeSrvc *intakesrvc.IntakeSrvc) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("intake", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	// The form is embedded on arbitrary marketing pages, hence the
	// wide-open origin policy.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         3000,
	}))

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteErrorJson(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	server := &HttpServer{
		intakeSrvc: intakeSrvc,
		router:     router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router, used by httptest.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/api/contact", httpserver.postContact)
	r.Get("/api/contact", httpserver.getContacts)
	r.Patch("/api/contact/{id}", httpserver.patchContact)
	r.Options("/api/contact", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// adminKey extracts the staff credential from the request: either the
// "key" query parameter (dashboard links) or an Authorization bearer
// value. Verification happens in the service layer.
func adminKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return key
	}
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}
