package services

import (
	"context"
	"sync"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/models"
)

// StudentService представляет сервис работы преподавателя с учениками
type StudentService struct {
	client *api.Client
}

// NewStudentService создает новый сервис учеников
func NewStudentService(client *api.Client) *StudentService {
	return &StudentService{client: client}
}

// Roster возвращает профили учеников преподавателя. Бэкенд отдает список
// ID, профили запрашиваются параллельно и собираются в исходном порядке.
func (s *StudentService) Roster(ctx context.Context, token string, teacherID int) ([]models.StudentProfile, error) {
	ids, err := s.client.TeacherStudents(ctx, token, teacherID)
	if err != nil {
		return nil, err
	}

	students := make([]models.StudentProfile, len(ids))
	if err := fetchAll(len(ids), func(i int) error {
		profile, err := s.client.TeacherStudentProfile(ctx, token, ids[i])
		if err != nil {
			return err
		}
		students[i] = *profile
		return nil
	}); err != nil {
		return nil, err
	}
	return students, nil
}

// Requests возвращает заявки учеников
func (s *StudentService) Requests(ctx context.Context, token string, teacherID int) ([]models.StudentRequest, error) {
	return s.client.TeacherRequests(ctx, token, teacherID)
}

// AcceptRequest принимает заявку
func (s *StudentService) AcceptRequest(ctx context.Context, token string, requestID int) error {
	return s.client.AcceptRequest(ctx, token, requestID)
}

// RejectRequest отклоняет заявку
func (s *StudentService) RejectRequest(ctx context.Context, token string, requestID int) error {
	return s.client.RejectRequest(ctx, token, requestID)
}

// RemoveStudent убирает ученика из списка
func (s *StudentService) RemoveStudent(ctx context.Context, token string, teacherID, studentID int) error {
	return s.client.RemoveStudent(ctx, token, teacherID, studentID)
}

// fetchAll выполняет n независимых запросов параллельно и возвращает
// первую ошибку. Порядок результатов определяет вызывающий через индекс.
func fetchAll(n int, fetch func(i int) error) error {
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = fetch(i)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
