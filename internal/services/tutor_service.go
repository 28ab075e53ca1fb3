package services

import (
	"context"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/models"
)

// TutorService представляет сервис поиска репетиторов для ученика
type TutorService struct {
	client *api.Client
}

// NewTutorService создает новый сервис репетиторов
func NewTutorService(client *api.Client) *TutorService {
	return &TutorService{client: client}
}

// Search ищет репетиторов по фильтрам
func (s *TutorService) Search(ctx context.Context, token string, params api.SearchTutorsParams) ([]models.TeacherProfile, error) {
	return s.client.SearchTutors(ctx, token, params)
}

// TutorProfile возвращает профиль репетитора
func (s *TutorService) TutorProfile(ctx context.Context, token string, teacherID int) (*models.TeacherProfile, error) {
	return s.client.TutorProfile(ctx, token, teacherID)
}

// SendRequest отправляет заявку репетитору. Повторные заявки тому же
// репетитору клиент не отсекает: это ответственность бэкенда.
func (s *TutorService) SendRequest(ctx context.Context, token string, teacherID, studentID int) error {
	return s.client.SendRequest(ctx, token, teacherID, studentID)
}

// MyTeachers возвращает профили преподавателей ученика
func (s *TutorService) MyTeachers(ctx context.Context, token string, studentID int) ([]models.TeacherProfile, error) {
	ids, err := s.client.StudentTeachers(ctx, token, studentID)
	if err != nil {
		return nil, err
	}

	teachers := make([]models.TeacherProfile, len(ids))
	if err := fetchAll(len(ids), func(i int) error {
		profile, err := s.client.TutorProfile(ctx, token, ids[i])
		if err != nil {
			return err
		}
		teachers[i] = *profile
		return nil
	}); err != nil {
		return nil, err
	}
	return teachers, nil
}
