package services

import (
	"context"
	"mime/multipart"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/forms"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/pkg/photo"
)

// ProfileService представляет сервис профилей и статистики
type ProfileService struct {
	client *api.Client
	photos *photo.Processor
}

// NewProfileService создает новый сервис профилей
func NewProfileService(client *api.Client, photos *photo.Processor) *ProfileService {
	return &ProfileService{
		client: client,
		photos: photos,
	}
}

// StudentProfile возвращает профиль ученика
func (s *ProfileService) StudentProfile(ctx context.Context, token string, studentID int) (*models.StudentProfile, error) {
	return s.client.StudentProfile(ctx, token, studentID)
}

// TeacherProfile возвращает профиль преподавателя
func (s *ProfileService) TeacherProfile(ctx context.Context, token string, teacherID int) (*models.TeacherProfile, error) {
	return s.client.TeacherProfile(ctx, token, teacherID)
}

// UpdateStudent валидирует форму и обновляет профиль ученика. Фотография,
// если загружена, уменьшается и перекодируется перед отправкой.
func (s *ProfileService) UpdateStudent(ctx context.Context, token string, studentID int, form forms.StudentProfileForm, photoFile *multipart.FileHeader) (*models.StudentProfile, forms.Errors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return nil, errs, nil
	}

	if photoFile != nil {
		encoded, err := s.photos.FromUpload(photoFile)
		if err != nil {
			return nil, forms.Errors{"photo": err.Error()}, nil
		}
		form.PhotoBase64 = encoded
	}

	profile, err := s.client.UpdateStudentProfile(ctx, token, studentID, api.UpdateStudentProfileRequest{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		MiddleName:  form.MiddleName,
		BirthDate:   form.BirthDate,
		Gender:      form.Gender,
		ContactInfo: form.ContactInfo,
		PhotoBase64: form.PhotoBase64,
	})
	if err != nil {
		return nil, nil, err
	}
	return profile, nil, nil
}

// UpdateTeacher валидирует форму и обновляет профиль преподавателя
func (s *ProfileService) UpdateTeacher(ctx context.Context, token string, teacherID int, form forms.TeacherProfileForm, photoFile *multipart.FileHeader) (*models.TeacherProfile, forms.Errors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return nil, errs, nil
	}

	if photoFile != nil {
		encoded, err := s.photos.FromUpload(photoFile)
		if err != nil {
			return nil, forms.Errors{"photo": err.Error()}, nil
		}
		form.PhotoBase64 = encoded
	}

	profile, err := s.client.UpdateTeacherProfile(ctx, token, teacherID, api.UpdateTeacherProfileRequest{
		FirstName:             form.FirstName,
		LastName:              form.LastName,
		MiddleName:            form.MiddleName,
		BirthDate:             form.BirthDate,
		Gender:                form.Gender,
		ContactInfo:           form.ContactInfo,
		Education:             form.Education,
		ExperienceYears:       form.ExperienceYears,
		HourlyRate:            form.HourlyRate,
		SubjectIDs:            form.SubjectIDs,
		PreparationProgramIDs: form.PreparationProgramIDs,
		PhotoBase64:           form.PhotoBase64,
	})
	if err != nil {
		return nil, nil, err
	}
	return profile, nil, nil
}

// StudentStatistics возвращает статистику ученика, посчитанную бэкендом
func (s *ProfileService) StudentStatistics(ctx context.Context, token string, studentID int) (*models.StudentStatistics, error) {
	return s.client.StudentStatistics(ctx, token, studentID)
}

// TeacherStatistics возвращает статистику преподавателя, посчитанную бэкендом
func (s *ProfileService) TeacherStatistics(ctx context.Context, token string, teacherID int) (*models.TeacherStatistics, error) {
	return s.client.TeacherStatistics(ctx, token, teacherID)
}

// TeacherRating возвращает рейтинг преподавателя
func (s *ProfileService) TeacherRating(ctx context.Context, token string, teacherID int) (*models.TeacherRating, error) {
	return s.client.TeacherRating(ctx, token, teacherID)
}

// TeacherReviews возвращает отзывы о преподавателе
func (s *ProfileService) TeacherReviews(ctx context.Context, token string, teacherID int) ([]models.Review, error) {
	return s.client.TeacherReviews(ctx, token, teacherID)
}
