package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/GrinOnFace/Educat/internal/models"
)

// SearchTutorsParams представляет фильтры поиска репетиторов.
// Нулевые указатели означают отсутствие фильтра.
type SearchTutorsParams struct {
	SubjectID     *int
	MinPrice      *float64
	MaxPrice      *float64
	MinExperience *int
	MinRating     *float64
}

func (p SearchTutorsParams) query() url.Values {
	query := url.Values{}
	if p.SubjectID != nil {
		query.Set("subjectId", strconv.Itoa(*p.SubjectID))
	}
	if p.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	if p.MinExperience != nil {
		query.Set("minExperience", strconv.Itoa(*p.MinExperience))
	}
	if p.MinRating != nil {
		query.Set("minRating", strconv.FormatFloat(*p.MinRating, 'f', -1, 64))
	}
	return query
}

// SearchTutors ищет репетиторов по фильтрам
func (c *Client) SearchTutors(ctx context.Context, token string, params SearchTutorsParams) ([]models.TeacherProfile, error) {
	var tutors []models.TeacherProfile
	if err := c.do(ctx, http.MethodGet, "/Student/search-tutors", token, params.query(), nil, &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

// TutorProfile возвращает профиль преподавателя глазами ученика
func (c *Client) TutorProfile(ctx context.Context, token string, teacherID int) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile
	path := fmt.Sprintf("/Student/teacher-profile/%d", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SendRequest отправляет заявку на занятия с преподавателем
func (c *Client) SendRequest(ctx context.Context, token string, teacherID, studentID int) error {
	query := url.Values{"studentId": {strconv.Itoa(studentID)}}
	path := fmt.Sprintf("/Student/send-request/%d", teacherID)
	return c.do(ctx, http.MethodPost, path, token, query, nil, nil)
}

// StudentTeachers возвращает ID преподавателей ученика
func (c *Client) StudentTeachers(ctx context.Context, token string, studentID int) ([]int, error) {
	var ids []int
	path := fmt.Sprintf("/Student/%d/teachers", studentID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
