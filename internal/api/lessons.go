package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/GrinOnFace/Educat/internal/models"
)

// CreateLessonRequest представляет запрос создания занятия
type CreateLessonRequest struct {
	TeacherID      int       `json:"teacherId"`
	StudentID      int       `json:"studentId"`
	SubjectID      int       `json:"subjectId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	ConferenceLink string    `json:"conferenceLink"`
	WhiteboardLink string    `json:"whiteboardLink"`
}

// UploadAttachmentRequest представляет запрос загрузки файла к занятию
type UploadAttachmentRequest struct {
	FileName      string `json:"fileName"`
	FileType      string `json:"fileType"`
	Base64Content string `json:"base64Content"`
}

// CreateReviewRequest представляет запрос создания отзыва
type CreateReviewRequest struct {
	LessonID  int    `json:"lessonId"`
	TeacherID int    `json:"teacherId"`
	StudentID int    `json:"studentId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// TeacherLessons возвращает занятия преподавателя
func (c *Client) TeacherLessons(ctx context.Context, token string, teacherID int) ([]models.Lesson, error) {
	var lessons []models.Lesson
	path := fmt.Sprintf("/Teacher/%d/lessons", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// StudentLessons возвращает занятия ученика
func (c *Client) StudentLessons(ctx context.Context, token string, studentID int) ([]models.Lesson, error) {
	var lessons []models.Lesson
	path := fmt.Sprintf("/Student/%d/lessons", studentID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// Lesson возвращает занятие по ID; базовый путь зависит от роли пользователя
func (c *Client) Lesson(ctx context.Context, token string, userID, lessonID int, isTeacher bool) (*models.Lesson, error) {
	base := "/Student"
	if isTeacher {
		base = "/Teacher"
	}
	var lesson models.Lesson
	path := fmt.Sprintf("%s/%d/lessons/%d", base, userID, lessonID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CreateLesson создает занятие
func (c *Client) CreateLesson(ctx context.Context, token string, req CreateLessonRequest) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := c.do(ctx, http.MethodPost, "/Teacher/create-lesson", token, nil, req, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// UploadAttachment загружает файл к занятию
func (c *Client) UploadAttachment(ctx context.Context, token string, lessonID, teacherID int, req UploadAttachmentRequest) error {
	query := url.Values{"teacherId": {strconv.Itoa(teacherID)}}
	path := fmt.Sprintf("/Teacher/lesson/%d/upload-attachment", lessonID)
	return c.do(ctx, http.MethodPost, path, token, query, req, nil)
}

// LessonAttachments возвращает файлы занятия
func (c *Client) LessonAttachments(ctx context.Context, token string, lessonID int) ([]models.Attachment, error) {
	var attachments []models.Attachment
	path := fmt.Sprintf("/Teacher/lesson/%d/attachments", lessonID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// DeleteAttachment удаляет файл занятия
func (c *Client) DeleteAttachment(ctx context.Context, token string, lessonID, attachmentID int) error {
	path := fmt.Sprintf("/Teacher/lesson/%d/attachment/%d", lessonID, attachmentID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil)
}

// CreateReview создает отзыв о занятии
func (c *Client) CreateReview(ctx context.Context, token string, req CreateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/Review/create", token, nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
