package viewmodel

import (
	"testing"
	"time"

	"github.com/GrinOnFace/Educat/internal/models"
)

// 2 июня 2025 — понедельник
func mondayAt(hour, min int) time.Time {
	return time.Date(2025, time.June, 2, hour, min, 0, 0, time.UTC)
}

func TestWeekdayKey(t *testing.T) {
	cases := []struct {
		day    int
		expect string
	}{
		{2, "monday"},
		{3, "tuesday"},
		{4, "wednesday"},
		{5, "thursday"},
		{6, "friday"},
		{7, "saturday"},
		{8, "sunday"},
	}
	for _, tc := range cases {
		at := time.Date(2025, time.June, tc.day, 12, 0, 0, 0, time.UTC)
		if got := WeekdayKey(at); got != tc.expect {
			t.Fatalf("June %d: expected %q, got %q", tc.day, tc.expect, got)
		}
	}
}

func TestBuildWeekScheduleHasAllDays(t *testing.T) {
	schedule := BuildWeekSchedule(nil)
	if len(schedule) != 7 {
		t.Fatalf("expected 7 day keys, got %d", len(schedule))
	}
	for _, day := range Weekdays {
		bucket, ok := schedule[day]
		if !ok {
			t.Fatalf("missing day key %q", day)
		}
		if bucket == nil || len(bucket) != 0 {
			t.Fatalf("day %q: expected empty non-nil bucket, got %v", day, bucket)
		}
	}
}

func TestBuildWeekSchedulePartition(t *testing.T) {
	lessons := []models.Lesson{
		{ID: 1, StartTime: mondayAt(10, 0)},
		{ID: 2, StartTime: mondayAt(9, 0)},
		{ID: 3, StartTime: mondayAt(9, 0).AddDate(0, 0, 2)},  // среда
		{ID: 4, StartTime: mondayAt(18, 0).AddDate(0, 0, 6)}, // воскресенье
	}

	schedule := BuildWeekSchedule(lessons)

	total := 0
	for _, day := range Weekdays {
		total += len(schedule[day])
	}
	if total != len(lessons) {
		t.Fatalf("expected %d lessons across all days, got %d", len(lessons), total)
	}

	monday := schedule["monday"]
	if len(monday) != 2 {
		t.Fatalf("expected 2 monday lessons, got %d", len(monday))
	}
	if monday[0].ID != 2 || monday[1].ID != 1 {
		t.Fatalf("expected monday order [2 1] by start time, got [%d %d]", monday[0].ID, monday[1].ID)
	}
	if len(schedule["wednesday"]) != 1 || schedule["wednesday"][0].ID != 3 {
		t.Fatalf("expected lesson 3 on wednesday, got %v", schedule["wednesday"])
	}
	if len(schedule["sunday"]) != 1 || schedule["sunday"][0].ID != 4 {
		t.Fatalf("expected lesson 4 on sunday, got %v", schedule["sunday"])
	}
}

func TestBuildWeekScheduleKeepsDuplicatesAndTies(t *testing.T) {
	same := mondayAt(15, 0)
	lessons := []models.Lesson{
		{ID: 7, StartTime: same},
		{ID: 7, StartTime: same},
		{ID: 8, StartTime: same},
	}

	monday := BuildWeekSchedule(lessons)["monday"]
	if len(monday) != 3 {
		t.Fatalf("expected duplicates preserved, got %d lessons", len(monday))
	}
	// стабильная сортировка: равное время сохраняет порядок из ответа
	if monday[0].ID != 7 || monday[1].ID != 7 || monday[2].ID != 8 {
		t.Fatalf("expected input order for equal start times, got [%d %d %d]",
			monday[0].ID, monday[1].ID, monday[2].ID)
	}
}
