package postgres

import (
	"github.com/xviridev-art/Portofolio/internal/domain"
)

func toDomainAdmin(m adminModel) domain.Admin {
	return domain.Admin{
		AdminID:      m.AdminID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDomainLoginAttempt(m loginAttemptModel) domain.LoginAttempt {
	attempt := domain.LoginAttempt{
		ID:            m.ID,
		Username:      m.Username,
		AttemptAt:     m.AttemptAt,
		Status:        m.Status,
		FailureReason: m.FailureReason,
		UserAgent:     m.UserAgent,
	}
	if m.IPAddress != nil {
		attempt.IPAddress = *m.IPAddress
	}
	return attempt
}

func toDomainComment(m commentModel) domain.Comment {
	comment := domain.Comment{
		CommentID: m.CommentID,
		Name:      m.Name,
		Message:   m.Message,
		Likes:     m.Likes,
		IsVisible: m.IsVisible,
		CreatedAt: m.CreatedAt,
	}
	if m.Photo != nil {
		comment.Photo = *m.Photo
	}
	return comment
}

func toDomainContactMessage(m contactMessageModel) domain.ContactMessage {
	return domain.ContactMessage{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func toDomainPortfolio(m portfolioModel) domain.Portfolio {
	return domain.Portfolio{
		PortfolioID: m.PortfolioID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		ProjectURL:  m.ProjectURL,
		TechStack:   m.TechStack,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainCertificate(m certificateModel) domain.Certificate {
	return domain.Certificate{
		CertificateID: m.CertificateID,
		Title:         m.Title,
		Issuer:        m.Issuer,
		ImageURL:      m.ImageURL,
		IssueDate:     m.IssueDate,
		CreatedAt:     m.CreatedAt,
	}
}
