package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
	"github.com/xviridev-art/Portofolio/internal/ports"
)

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uuid.UUID]domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uuid.UUID]domain.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, params ports.CommentCreateParams) (domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment := domain.Comment{
		CommentID: uuid.New(),
		Name:      params.Name,
		Message:   params.Message,
		Photo:     params.Photo,
		IsVisible: true,
		CreatedAt: params.CreatedAt,
	}
	r.comments[comment.CommentID] = comment
	return comment, nil
}

func (r *fakeCommentRepo) ListVisible(_ context.Context) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Comment
	for _, c := range r.comments {
		if c.IsVisible {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) ListAll(_ context.Context) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCommentRepo) SetVisibility(_ context.Context, commentID uuid.UUID, visible bool, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[commentID]
	if !ok {
		return domain.ErrNotFound
	}
	c.IsVisible = visible
	r.comments[commentID] = c
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, commentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[commentID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.comments, commentID)
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[uuid.UUID]domain.ContactMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[uuid.UUID]domain.ContactMessage{}}
}

func (r *fakeMessageRepo) Create(_ context.Context, params ports.ContactMessageCreateParams) (domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := domain.ContactMessage{
		MessageID: uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Message:   params.Message,
		Status:    domain.MessageStatusUnread,
		CreatedAt: params.CreatedAt,
	}
	r.messages[msg.MessageID] = msg
	return msg, nil
}

func (r *fakeMessageRepo) List(_ context.Context) ([]domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessageRepo) SetStatus(_ context.Context, messageID uuid.UUID, status string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[messageID]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = status
	r.messages[messageID] = m
	return nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, messageID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[messageID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.messages, messageID)
	return nil
}

func newContentService() (*Service, *fakeCommentRepo, *fakeMessageRepo) {
	comments := newFakeCommentRepo()
	messages := newFakeMessageRepo()
	svc := NewService(Dependencies{
		Comments: comments,
		Messages: messages,
	})
	return svc, comments, messages
}

func TestCreateComment(t *testing.T) {
	t.Parallel()
	svc, _, _ := newContentService()

	item, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		Name: "  Sam  ", Message: "nice site",
	})
	if err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}
	if item.Name != "Sam" {
		t.Fatalf("Name = %q, want trimmed Sam", item.Name)
	}
	if !item.IsVisible {
		t.Fatal("new comment should start visible")
	}
	if item.Likes != 0 {
		t.Fatalf("Likes = %d, want 0", item.Likes)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newContentService()

	cases := []CreateCommentRequest{
		{Name: "", Message: "hello"},
		{Name: "Sam", Message: ""},
		{Name: "   ", Message: "   "},
	}
	for _, req := range cases {
		if _, err := svc.CreateComment(context.Background(), req); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("CreateComment(%+v) error = %v, want invalid input", req, err)
		}
	}
}

func TestCommentModeration(t *testing.T) {
	t.Parallel()
	svc, _, _ := newContentService()

	item, err := svc.CreateComment(context.Background(), CreateCommentRequest{Name: "Sam", Message: "hi"})
	if err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}

	if err := svc.SetCommentVisibility(context.Background(), item.ID, false); err != nil {
		t.Fatalf("SetCommentVisibility() error = %v", err)
	}

	visible, err := svc.ListComments(context.Background(), false)
	if err != nil {
		t.Fatalf("ListComments(visible) error = %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("visible comments = %d, want 0 after hiding", len(visible))
	}

	all, err := svc.ListComments(context.Background(), true)
	if err != nil {
		t.Fatalf("ListComments(all) error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("all comments = %d, want 1", len(all))
	}

	if err := svc.DeleteComment(context.Background(), item.ID); err != nil {
		t.Fatalf("DeleteComment() error = %v", err)
	}
	if err := svc.DeleteComment(context.Background(), item.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete error = %v, want not found", err)
	}
}

func TestSubmitContactMessage(t *testing.T) {
	t.Parallel()
	svc, _, _ := newContentService()

	item, err := svc.SubmitContactMessage(context.Background(), ContactRequest{
		Name: "Sam", Email: "sam@example.com", Message: "hello there",
	})
	if err != nil {
		t.Fatalf("SubmitContactMessage() error = %v", err)
	}
	if item.Status != domain.MessageStatusUnread {
		t.Fatalf("Status = %q, want unread", item.Status)
	}

	if err := svc.MarkContactMessageRead(context.Background(), item.ID); err != nil {
		t.Fatalf("MarkContactMessageRead() error = %v", err)
	}
	listed, err := svc.ListContactMessages(context.Background())
	if err != nil {
		t.Fatalf("ListContactMessages() error = %v", err)
	}
	if len(listed) != 1 || listed[0].Status != domain.MessageStatusRead {
		t.Fatalf("listed = %+v, want one read message", listed)
	}
}

func TestSubmitContactMessageValidation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newContentService()

	cases := []ContactRequest{
		{Name: "", Email: "sam@example.com", Message: "hi"},
		{Name: "Sam", Email: "", Message: "hi"},
		{Name: "Sam", Email: "not-an-email", Message: "hi"},
		{Name: "Sam", Email: "sam@example.com", Message: ""},
	}
	for _, req := range cases {
		if _, err := svc.SubmitContactMessage(context.Background(), req); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("SubmitContactMessage(%+v) error = %v, want invalid input", req, err)
		}
	}
}
