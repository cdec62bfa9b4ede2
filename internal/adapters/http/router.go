package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers all HTTP routes and the middleware stack.
// Centralizing routes here keeps auth and error behavior consistent across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", handler.login)
		r.Get("/auth/verify", handler.verify)

		r.Get("/comments", handler.listComments)
		r.Post("/comments", handler.createComment)
		r.Post("/contact", handler.submitContact)
		r.Get("/portfolios", handler.listPortfolios)
		r.Get("/certificates", handler.listCertificates)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handler.adminAuthMiddleware)
			r.Get("/comments", handler.listAllComments)
			r.Patch("/comments/{comment_id}", handler.moderateComment)
			r.Delete("/comments/{comment_id}", handler.deleteComment)
			r.Get("/messages", handler.listContactMessages)
			r.Patch("/messages/{message_id}", handler.markContactMessageRead)
			r.Delete("/messages/{message_id}", handler.deleteContactMessage)
			r.Get("/login-history", handler.loginHistory)
		})
	})

	return r
}
