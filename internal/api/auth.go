package api

import (
	"context"
	"net/http"

	"github.com/GrinOnFace/Educat/internal/models"
)

// LoginRequest представляет запрос входа
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RegisterStudentRequest представляет запрос регистрации ученика
type RegisterStudentRequest struct {
	Login           string `json:"login"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	LastName        string `json:"lastName"`
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName,omitempty"`
	BirthDate       string `json:"birthDate"`
	Gender          string `json:"gender"`
	ContactInfo     string `json:"contactInfo,omitempty"`
	PhotoBase64     string `json:"photoBase64,omitempty"`
}

// RegisterTeacherRequest представляет запрос регистрации преподавателя
type RegisterTeacherRequest struct {
	Login                 string  `json:"login"`
	Password              string  `json:"password"`
	ConfirmPassword       string  `json:"confirmPassword"`
	LastName              string  `json:"lastName"`
	FirstName             string  `json:"firstName"`
	MiddleName            string  `json:"middleName,omitempty"`
	BirthDate             string  `json:"birthDate"`
	Gender                string  `json:"gender"`
	ContactInfo           string  `json:"contactInfo,omitempty"`
	Education             string  `json:"education"`
	PreparationProgramIDs []int   `json:"preparationProgramIds"`
	ExperienceYears       int     `json:"experienceYears"`
	HourlyRate            float64 `json:"hourlyRate"`
	SubjectIDs            []int   `json:"subjectIds"`
	PhotoBase64           string  `json:"photoBase64,omitempty"`
}

// AuthResponse представляет ответ бэкенда на вход и регистрацию
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// Login выполняет вход по логину и паролю
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/Auth/login", "", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterStudent регистрирует ученика
func (c *Client) RegisterStudent(ctx context.Context, req RegisterStudentRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/Auth/register/student", "", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterTeacher регистрирует преподавателя
func (c *Client) RegisterTeacher(ctx context.Context, req RegisterTeacherRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/Auth/register/teacher", "", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
