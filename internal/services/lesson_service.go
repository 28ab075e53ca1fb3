package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/forms"
	"github.com/GrinOnFace/Educat/internal/models"
)

// LessonService представляет сервис занятий
type LessonService struct {
	client            *api.Client
	maxAttachmentSize int64
}

// NewLessonService создает новый сервис занятий
func NewLessonService(client *api.Client, maxAttachmentSize int64) *LessonService {
	return &LessonService{
		client:            client,
		maxAttachmentSize: maxAttachmentSize,
	}
}

// LessonsFor возвращает занятия пользователя в зависимости от роли
func (s *LessonService) LessonsFor(ctx context.Context, token string, user *models.User) ([]models.Lesson, error) {
	if user.HasRole(models.RoleTeacher) {
		return s.client.TeacherLessons(ctx, token, user.ID)
	}
	return s.client.StudentLessons(ctx, token, user.ID)
}

// Lesson возвращает занятие по ID
func (s *LessonService) Lesson(ctx context.Context, token string, user *models.User, lessonID int) (*models.Lesson, error) {
	return s.client.Lesson(ctx, token, user.ID, lessonID, user.HasRole(models.RoleTeacher))
}

// Create валидирует форму и создает занятие. Ошибки полей возвращаются
// до любого сетевого вызова.
func (s *LessonService) Create(ctx context.Context, token string, teacher *models.User, form forms.LessonForm) (*models.Lesson, forms.Errors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return nil, errs, nil
	}

	lesson, err := s.client.CreateLesson(ctx, token, api.CreateLessonRequest{
		TeacherID:      teacher.ID,
		StudentID:      form.StudentID,
		SubjectID:      form.SubjectID,
		StartTime:      form.StartTime,
		EndTime:        form.EndTime,
		ConferenceLink: form.ConferenceLink,
		WhiteboardLink: form.WhiteboardLink,
	})
	if err != nil {
		return nil, nil, err
	}
	return lesson, nil, nil
}

// UploadAttachment читает загруженный файл и передает его бэкенду целиком
// в base64
func (s *LessonService) UploadAttachment(ctx context.Context, token string, teacherID, lessonID int, file *multipart.FileHeader) error {
	if file.Size > s.maxAttachmentSize {
		return fmt.Errorf("file size exceeds maximum allowed size")
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return s.client.UploadAttachment(ctx, token, lessonID, teacherID, api.UploadAttachmentRequest{
		FileName:      file.Filename,
		FileType:      file.Header.Get("Content-Type"),
		Base64Content: base64.StdEncoding.EncodeToString(data),
	})
}

// Attachments возвращает файлы занятия
func (s *LessonService) Attachments(ctx context.Context, token string, lessonID int) ([]models.Attachment, error) {
	return s.client.LessonAttachments(ctx, token, lessonID)
}

// DeleteAttachment удаляет файл занятия
func (s *LessonService) DeleteAttachment(ctx context.Context, token string, lessonID, attachmentID int) error {
	return s.client.DeleteAttachment(ctx, token, lessonID, attachmentID)
}

// CreateReview валидирует форму и создает отзыв. Дубликаты отзывов клиент
// не отслеживает: это ответственность бэкенда.
func (s *LessonService) CreateReview(ctx context.Context, token string, student *models.User, form forms.ReviewForm) (*models.Review, forms.Errors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return nil, errs, nil
	}

	review, err := s.client.CreateReview(ctx, token, api.CreateReviewRequest{
		LessonID:  form.LessonID,
		TeacherID: form.TeacherID,
		StudentID: student.ID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	})
	if err != nil {
		return nil, nil, err
	}
	return review, nil, nil
}
