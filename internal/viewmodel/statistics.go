package viewmodel

import (
	"time"

	"github.com/GrinOnFace/Educat/internal/models"
)

// SubjectCount представляет число занятий по одному предмету
type SubjectCount struct {
	Name  string
	Count int
}

// Dashboard представляет агрегаты для графиков дашборда
type Dashboard struct {
	// WeeklyHours — часы завершенных занятий по дням недели,
	// понедельник первый
	WeeklyHours [7]float64
	// Upcoming — число запланированных занятий на ближайшие 7 дней
	// по смещению от сегодня (0 — сегодня, 6 — через шесть дней)
	Upcoming [7]int
	// Subjects — занятия по предметам в порядке первого появления
	Subjects []SubjectCount
}

// mondayIndex переводит день недели в индекс с понедельником в нуле
func mondayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// BuildDashboard считает все три агрегата за один проход по списку занятий.
// В часы попадают только завершенные занятия, в предстоящие — только
// запланированные в пределах недели вперед; распределение по предметам
// учитывает все занятия независимо от статуса.
func BuildDashboard(lessons []models.Lesson, now time.Time) Dashboard {
	var dashboard Dashboard
	subjectIndex := make(map[string]int)

	for _, lesson := range lessons {
		if lesson.Status == models.LessonCompleted {
			dashboard.WeeklyHours[mondayIndex(lesson.StartTime.Weekday())] += lesson.Duration().Hours()
		}

		if lesson.Status == models.LessonScheduled {
			offset := int(lesson.StartTime.Sub(now) / (24 * time.Hour))
			if lesson.StartTime.After(now) || lesson.StartTime.Equal(now) {
				if offset >= 0 && offset < 7 {
					dashboard.Upcoming[offset]++
				}
			}
		}

		if i, ok := subjectIndex[lesson.SubjectName]; ok {
			dashboard.Subjects[i].Count++
		} else {
			subjectIndex[lesson.SubjectName] = len(dashboard.Subjects)
			dashboard.Subjects = append(dashboard.Subjects, SubjectCount{Name: lesson.SubjectName, Count: 1})
		}
	}

	return dashboard
}
