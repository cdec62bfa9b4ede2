package http

import (
	"net/http"

	"github.com/xviridev-art/Portofolio/internal/application"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		// Garbage bodies behave like empty credentials: same 400, no lookup.
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	req.IPAddress = readIP(r)
	req.UserAgent = r.UserAgent()

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"token": res.Token,
		"user":  res.Admin,
	})
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	raw, err := bearerTokenFromHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	admin, err := h.service.VerifyToken(r.Context(), raw)
	if err != nil {
		writeMappedError(r.Context(), w, "verify", err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": admin})
}

func (h *Handler) loginHistory(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.service.LoginHistory(r.Context(), parseIntDefault(r.URL.Query().Get("limit"), 50))
	if err != nil {
		writeMappedError(r.Context(), w, "login_history", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": attempts})
}
