package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/application"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	// Visitors only see the visible set; moderation uses the admin listing.
	items, err := h.service.ListComments(r.Context(), false)
	if err != nil {
		writeMappedError(r.Context(), w, "list_comments", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": items})
}

func (h *Handler) listAllComments(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListComments(r.Context(), true)
	if err != nil {
		writeMappedError(r.Context(), w, "list_all_comments", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": items})
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var req application.CreateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Name and message are required")
		return
	}

	item, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_comment", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"data": item})
}

type commentModerationRequest struct {
	IsVisible bool `json:"isVisible"`
}

func (h *Handler) moderateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "comment_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}
	var req commentModerationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SetCommentVisibility(r.Context(), commentID, req.IsVisible); err != nil {
		writeMappedError(r.Context(), w, "moderate_comment", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"message": "Comment updated"})
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "comment_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}
	if err := h.service.DeleteComment(r.Context(), commentID); err != nil {
		writeMappedError(r.Context(), w, "delete_comment", err)
		return
	}
	if admin, ok := adminFromContext(r.Context()); ok {
		httpLogger().InfoContext(r.Context(), "comment deleted",
			"operation", "delete_comment",
			"outcome", "success",
			"admin", admin.Username,
			"comment_id", commentID.String(),
			"request_id", requestIDFromContext(r.Context()),
		)
	}
	writeSuccess(w, http.StatusOK, map[string]any{"message": "Comment deleted"})
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var req application.ContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	item, err := h.service.SubmitContactMessage(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "submit_contact", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{
		"message": "Message sent successfully!",
		"data":    item,
	})
}

func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListContactMessages(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_contact_messages", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": items})
}

func (h *Handler) markContactMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(chi.URLParam(r, "message_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message id")
		return
	}
	if err := h.service.MarkContactMessageRead(r.Context(), messageID); err != nil {
		writeMappedError(r.Context(), w, "mark_contact_message_read", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"message": "Message marked as read"})
}

func (h *Handler) deleteContactMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(chi.URLParam(r, "message_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message id")
		return
	}
	if err := h.service.DeleteContactMessage(r.Context(), messageID); err != nil {
		writeMappedError(r.Context(), w, "delete_contact_message", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"message": "Message deleted"})
}

func (h *Handler) listPortfolios(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPortfolios(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_portfolios", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": items})
}

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCertificates(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_certificates", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": items})
}
