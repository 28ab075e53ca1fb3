package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/GrinOnFace/Educat/internal/models"
)

// UpdateStudentProfileRequest представляет запрос обновления профиля ученика
type UpdateStudentProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	MiddleName  string `json:"middleName"`
	BirthDate   string `json:"birthDate"`
	Gender      string `json:"gender"`
	ContactInfo string `json:"contactInfo"`
	PhotoBase64 string `json:"photoBase64"`
}

// UpdateTeacherProfileRequest представляет запрос обновления профиля преподавателя
type UpdateTeacherProfileRequest struct {
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	MiddleName            string  `json:"middleName"`
	BirthDate             string  `json:"birthDate"`
	Gender                string  `json:"gender"`
	ContactInfo           string  `json:"contactInfo"`
	Education             string  `json:"education"`
	ExperienceYears       int     `json:"experienceYears"`
	HourlyRate            float64 `json:"hourlyRate"`
	SubjectIDs            []int   `json:"subjectIds"`
	PreparationProgramIDs []int   `json:"preparationProgramIds"`
	PhotoBase64           string  `json:"photoBase64"`
}

// StudentProfile возвращает профиль ученика
func (c *Client) StudentProfile(ctx context.Context, token string, studentID int) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	path := fmt.Sprintf("/Student/profile/%d", studentID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// TeacherProfile возвращает профиль преподавателя
func (c *Client) TeacherProfile(ctx context.Context, token string, teacherID int) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile
	path := fmt.Sprintf("/Teacher/profile/%d", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateStudentProfile обновляет профиль ученика; запись заменяется целиком
func (c *Client) UpdateStudentProfile(ctx context.Context, token string, studentID int, req UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	path := fmt.Sprintf("/Student/profile/%d", studentID)
	if err := c.do(ctx, http.MethodPut, path, token, nil, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateTeacherProfile обновляет профиль преподавателя; запись заменяется целиком
func (c *Client) UpdateTeacherProfile(ctx context.Context, token string, teacherID int, req UpdateTeacherProfileRequest) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile
	path := fmt.Sprintf("/Teacher/profile/%d", teacherID)
	if err := c.do(ctx, http.MethodPut, path, token, nil, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// StudentStatistics возвращает статистику ученика
func (c *Client) StudentStatistics(ctx context.Context, token string, studentID int) (*models.StudentStatistics, error) {
	var stats models.StudentStatistics
	path := fmt.Sprintf("/Student/%d/statistics", studentID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TeacherStatistics возвращает статистику преподавателя
func (c *Client) TeacherStatistics(ctx context.Context, token string, teacherID int) (*models.TeacherStatistics, error) {
	var stats models.TeacherStatistics
	path := fmt.Sprintf("/Teacher/%d/statistics", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TeacherRating возвращает рейтинг преподавателя
func (c *Client) TeacherRating(ctx context.Context, token string, teacherID int) (*models.TeacherRating, error) {
	var rating models.TeacherRating
	path := fmt.Sprintf("/Teacher/%d/rating", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// TeacherReviews возвращает отзывы о преподавателе
func (c *Client) TeacherReviews(ctx context.Context, token string, teacherID int) ([]models.Review, error) {
	var reviews []models.Review
	path := fmt.Sprintf("/Teacher/%d/reviews", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
