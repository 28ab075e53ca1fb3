package viewmodel

import (
	"sort"
	"time"

	"github.com/GrinOnFace/Educat/internal/models"
)

// Weekdays перечисляет ключи дней недели в порядке отображения
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeekSchedule представляет расписание, сгруппированное по дням недели.
// Всегда содержит все 7 ключей; перестраивается целиком на каждый запрос.
type WeekSchedule map[string][]models.Lesson

// WeekdayKey возвращает ключ дня недели для момента времени
func WeekdayKey(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// BuildWeekSchedule раскладывает занятия по дням недели начала и сортирует
// каждый день по времени начала. Сортировка стабильная: занятия с равным
// временем остаются в порядке из ответа бэкенда. Дубликаты на входе
// сохраняются в выводе.
func BuildWeekSchedule(lessons []models.Lesson) WeekSchedule {
	schedule := make(WeekSchedule, len(Weekdays))
	for _, day := range Weekdays {
		schedule[day] = []models.Lesson{}
	}

	for _, lesson := range lessons {
		day := WeekdayKey(lesson.StartTime)
		schedule[day] = append(schedule[day], lesson)
	}

	for _, day := range Weekdays {
		bucket := schedule[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].StartTime.Before(bucket[j].StartTime)
		})
	}

	return schedule
}
