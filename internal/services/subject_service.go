package services

import (
	"context"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/models"
)

// SubjectService представляет сервис справочников
type SubjectService struct {
	client *api.Client
}

// NewSubjectService создает новый сервис справочников
func NewSubjectService(client *api.Client) *SubjectService {
	return &SubjectService{client: client}
}

// Subjects возвращает справочник предметов. Не кешируется: каждая
// страница запрашивает справочник заново.
func (s *SubjectService) Subjects(ctx context.Context, token string) ([]models.Subject, error) {
	return s.client.Subjects(ctx, token)
}
