package models

import "time"

// LessonStatus определяет статус занятия
type LessonStatus string

const (
	LessonScheduled LessonStatus = "Scheduled"
	LessonCompleted LessonStatus = "Completed"
	LessonCancelled LessonStatus = "Cancelled"
)

// Lesson представляет занятие. Запись принадлежит бэкенду: клиент держит
// read-only копию на время отображения страницы и перезапрашивает её при
// каждой навигации.
type Lesson struct {
	ID             int          `json:"id"`
	TeacherID      int          `json:"teacherId"`
	TeacherName    string       `json:"teacherName"`
	StudentID      int          `json:"studentId"`
	StudentName    string       `json:"studentName"`
	SubjectID      int          `json:"subjectId"`
	SubjectName    string       `json:"subjectName"`
	StartTime      time.Time    `json:"startTime"`
	EndTime        time.Time    `json:"endTime"`
	Status         LessonStatus `json:"status"`
	ConferenceLink string       `json:"conferenceLink"`
	WhiteboardLink string       `json:"whiteboardLink"`
	Attachments    []Attachment `json:"attachments,omitempty"`
}

// Duration возвращает длительность занятия
func (l *Lesson) Duration() time.Duration {
	return l.EndTime.Sub(l.StartTime)
}

// Attachment представляет прикрепленный к занятию файл. Содержимое
// передается целиком в base64, без стриминга и чанков.
type Attachment struct {
	ID            int    `json:"id"`
	FileName      string `json:"fileName"`
	FileType      string `json:"fileType"`
	Size          int64  `json:"size"`
	Base64Content string `json:"base64Content,omitempty"`
}

// Review представляет отзыв ученика о занятии
type Review struct {
	ID          int       `json:"id"`
	LessonID    int       `json:"lessonId"`
	TeacherID   int       `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	StudentID   int       `json:"studentId"`
	StudentName string    `json:"studentName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Subject представляет предмет из справочника
type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PreparationProgram представляет программу подготовки преподавателя
type PreparationProgram struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
