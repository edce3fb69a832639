// Package router wires the gateway's REST routes.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dkurganov/microblog/internal/api/grpc/postrpc"
	"github.com/dkurganov/microblog/internal/api/rest/middleware"
	"github.com/dkurganov/microblog/internal/event"
	"github.com/dkurganov/microblog/internal/gateway/handler"
	"github.com/dkurganov/microblog/internal/logger"
)

// Router registers the gateway routes over the internal post services.
type Router struct {
	admin     postrpc.PostAdminClient
	reader    postrpc.PostReaderClient
	publisher event.Publisher
	logger    *logger.Logger
}

// New creates a gateway Router instance.
func New(
	admin postrpc.PostAdminClient,
	reader postrpc.PostReaderClient,
	publisher event.Publisher,
	logger *logger.Logger,
) *Router {
	return &Router{
		admin:     admin,
		reader:    reader,
		publisher: publisher,
		logger:    logger,
	}
}

// Register builds the mux router with all routes attached. Write routes are
// not gated here: the post service's own interceptor decides trust from the
// shared cache slot.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	postHandler := handler.NewPost(r.admin, r.reader, r.publisher, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handle)

	m.HandleFunc("/api/healthcheck", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	post := m.PathPrefix("/api/post").Subrouter()
	post.HandleFunc("/create_post", postHandler.CreatePost).Methods(http.MethodPost)
	post.HandleFunc("/update_post/{post_id}", postHandler.UpdatePost).Methods(http.MethodPatch)
	post.HandleFunc("/delete_post/{post_id}", postHandler.DeletePost).Methods(http.MethodDelete)
	post.HandleFunc("/get_post/{post_id}", postHandler.GetPost).Methods(http.MethodGet)
	post.HandleFunc("/list_posts", postHandler.ListPosts).Methods(http.MethodGet)

	return m
}
