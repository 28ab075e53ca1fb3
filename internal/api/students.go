package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/GrinOnFace/Educat/internal/models"
)

// TeacherStudents возвращает ID учеников преподавателя
func (c *Client) TeacherStudents(ctx context.Context, token string, teacherID int) ([]int, error) {
	var ids []int
	path := fmt.Sprintf("/Teacher/%d/students", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// TeacherStudentProfile возвращает профиль ученика глазами преподавателя
func (c *Client) TeacherStudentProfile(ctx context.Context, token string, studentID int) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	path := fmt.Sprintf("/Teacher/student-profile/%d", studentID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// TeacherRequests возвращает заявки учеников к преподавателю
func (c *Client) TeacherRequests(ctx context.Context, token string, teacherID int) ([]models.StudentRequest, error) {
	var requests []models.StudentRequest
	path := fmt.Sprintf("/Teacher/%d/requests", teacherID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptRequest принимает заявку ученика
func (c *Client) AcceptRequest(ctx context.Context, token string, requestID int) error {
	path := fmt.Sprintf("/Teacher/accept-request/%d", requestID)
	return c.do(ctx, http.MethodPost, path, token, nil, nil, nil)
}

// RejectRequest отклоняет заявку ученика
func (c *Client) RejectRequest(ctx context.Context, token string, requestID int) error {
	path := fmt.Sprintf("/Teacher/reject-request/%d", requestID)
	return c.do(ctx, http.MethodPost, path, token, nil, nil, nil)
}

// RemoveStudent убирает ученика из списка преподавателя
func (c *Client) RemoveStudent(ctx context.Context, token string, teacherID, studentID int) error {
	path := fmt.Sprintf("/Teacher/remove-student/%d/%d", teacherID, studentID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil)
}
