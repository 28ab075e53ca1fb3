package models

import "time"

// StudentProfile представляет профиль ученика
type StudentProfile struct {
	UserID   int    `json:"userId"`
	FullName string `json:"fullName"`
	User     User   `json:"user"`
}

// TeacherProfile представляет публичный профиль преподавателя
type TeacherProfile struct {
	UserID              int                  `json:"userId"`
	FullName            string               `json:"fullName"`
	Education           string               `json:"education"`
	ExperienceYears     int                  `json:"experienceYears"`
	HourlyRate          float64              `json:"hourlyRate"`
	Rating              float64              `json:"rating"`
	ReviewsCount        int                  `json:"reviewsCount"`
	PhotoBase64         string               `json:"photoBase64,omitempty"`
	PreparationPrograms []PreparationProgram `json:"preparationPrograms"`
	Subjects            []Subject            `json:"subjects"`
	User                User                 `json:"user"`
}

// StudentRequest представляет заявку ученика на занятия с преподавателем
type StudentRequest struct {
	ID          int       `json:"id"`
	StudentID   int       `json:"studentId"`
	TeacherID   int       `json:"teacherId"`
	StudentName string    `json:"studentName"`
	TeacherName string    `json:"teacherName"`
	RequestDate time.Time `json:"requestDate"`
	Status      string    `json:"status"`
}

// StudentStatistics представляет статистику ученика, посчитанную бэкендом
type StudentStatistics struct {
	TotalLessons     int            `json:"totalLessons"`
	CompletedLessons int            `json:"completedLessons"`
	UpcomingLessons  int            `json:"upcomingLessons"`
	TeachersCount    int            `json:"teachersCount"`
	LessonsBySubject map[string]int `json:"lessonsBySubject"`
	TotalLessonHours float64        `json:"totalLessonHours"`
}

// TeacherStatistics представляет статистику преподавателя, посчитанную бэкендом
type TeacherStatistics struct {
	TotalStudents      int            `json:"totalStudents"`
	TotalLessons       int            `json:"totalLessons"`
	CompletedLessons   int            `json:"completedLessons"`
	UpcomingLessons    int            `json:"upcomingLessons"`
	Rating             float64        `json:"rating"`
	ReviewsCount       int            `json:"reviewsCount"`
	LessonsBySubject   map[string]int `json:"lessonsBySubject"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
}

// TeacherRating представляет рейтинг преподавателя
type TeacherRating struct {
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`
}
