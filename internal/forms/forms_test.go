package forms

import (
	"testing"
	"time"
)

func TestLoginFormValidate(t *testing.T) {
	form := &LoginForm{}
	errs := form.Validate()
	if errs.Valid() {
		t.Fatal("expected errors for empty login form")
	}
	if _, ok := errs["login"]; !ok {
		t.Fatal("expected error for empty login")
	}
	if _, ok := errs["password"]; !ok {
		t.Fatal("expected error for empty password")
	}

	form = &LoginForm{Login: "a@b.com", Password: "secret"}
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestRegisterStudentFormPasswordMismatch(t *testing.T) {
	form := &RegisterStudentForm{
		Login:           "a@b.com",
		Password:        "secret",
		ConfirmPassword: "other",
		LastName:        "Иванов",
		FirstName:       "Иван",
		BirthDate:       "2000-01-01",
		Gender:          "MALE",
	}

	errs := form.Validate()
	if errs.Valid() {
		t.Fatal("expected password mismatch to fail validation")
	}
	if len(errs) != 1 {
		t.Fatalf("expected only confirmPassword error, got %v", errs)
	}
	if _, ok := errs["confirmPassword"]; !ok {
		t.Fatalf("expected error keyed confirmPassword, got %v", errs)
	}

	form.ConfirmPassword = "secret"
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestRegisterTeacherFormRequiresSubjects(t *testing.T) {
	form := &RegisterTeacherForm{
		RegisterStudentForm: RegisterStudentForm{
			Login:           "a@b.com",
			Password:        "secret",
			ConfirmPassword: "secret",
			LastName:        "Иванов",
			FirstName:       "Иван",
			BirthDate:       "1990-01-01",
			Gender:          "MALE",
		},
		Education:  "МГУ",
		HourlyRate: 1500,
	}

	errs := form.Validate()
	if _, ok := errs["subjectIds"]; !ok {
		t.Fatalf("expected error for empty subjects, got %v", errs)
	}

	form.SubjectIDs = []int{1}
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestLessonFormEndBeforeStart(t *testing.T) {
	start := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
	}{
		{"end before start", start.Add(-time.Hour)},
		{"end equals start", start},
	}

	for _, tc := range cases {
		form := &LessonForm{
			StudentID:      1,
			SubjectID:      2,
			StartTime:      start,
			EndTime:        tc.end,
			ConferenceLink: "https://meet.example.com/1",
			WhiteboardLink: "https://board.example.com/1",
		}
		errs := form.Validate()
		if errs.Valid() {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if _, ok := errs["endTime"]; !ok {
			t.Fatalf("%s: expected error keyed endTime, got %v", tc.name, errs)
		}
	}

	form := &LessonForm{
		StudentID:      1,
		SubjectID:      2,
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		ConferenceLink: "https://meet.example.com/1",
		WhiteboardLink: "https://board.example.com/1",
	}
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestReviewFormRating(t *testing.T) {
	for _, rating := range []int{0, -1, 6} {
		form := &ReviewForm{LessonID: 1, TeacherID: 2, Rating: rating}
		errs := form.Validate()
		if _, ok := errs["rating"]; !ok {
			t.Fatalf("rating %d: expected error, got %v", rating, errs)
		}
	}
	for rating := 1; rating <= 5; rating++ {
		form := &ReviewForm{LessonID: 1, TeacherID: 2, Rating: rating}
		if errs := form.Validate(); !errs.Valid() {
			t.Fatalf("rating %d: expected valid form, got %v", rating, errs)
		}
	}
}
