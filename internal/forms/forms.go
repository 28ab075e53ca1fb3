package forms

import "time"

// Errors содержит ошибки валидации по именам полей
type Errors map[string]string

// Valid сообщает, прошла ли форма валидацию
func (e Errors) Valid() bool { return len(e) == 0 }

// LoginForm представляет форму входа
type LoginForm struct {
	Login    string `form:"login"`
	Password string `form:"password"`
}

// Validate проверяет форму входа
func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	if f.Login == "" {
		errs["login"] = "Укажите логин"
	}
	if f.Password == "" {
		errs["password"] = "Укажите пароль"
	}
	return errs
}

// RegisterStudentForm представляет форму регистрации ученика
type RegisterStudentForm struct {
	Login           string `form:"login"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	LastName        string `form:"lastName"`
	FirstName       string `form:"firstName"`
	MiddleName      string `form:"middleName"`
	BirthDate       string `form:"birthDate"`
	Gender          string `form:"gender"`
	ContactInfo     string `form:"contactInfo"`
	PhotoBase64     string `form:"-"`
}

// Validate проверяет форму регистрации ученика
func (f *RegisterStudentForm) Validate() Errors {
	errs := Errors{}
	requireAll(errs, map[string]string{
		"login":     f.Login,
		"password":  f.Password,
		"lastName":  f.LastName,
		"firstName": f.FirstName,
		"birthDate": f.BirthDate,
		"gender":    f.Gender,
	})
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Пароли не совпадают"
	}
	return errs
}

// RegisterTeacherForm представляет форму регистрации преподавателя
type RegisterTeacherForm struct {
	RegisterStudentForm
	Education             string  `form:"education"`
	ExperienceYears       int     `form:"experienceYears"`
	HourlyRate            float64 `form:"hourlyRate"`
	SubjectIDs            []int   `form:"subjectIds"`
	PreparationProgramIDs []int   `form:"preparationProgramIds"`
}

// Validate проверяет форму регистрации преподавателя
func (f *RegisterTeacherForm) Validate() Errors {
	errs := f.RegisterStudentForm.Validate()
	if f.Education == "" {
		errs["education"] = "Укажите образование"
	}
	if f.ExperienceYears < 0 {
		errs["experienceYears"] = "Опыт не может быть отрицательным"
	}
	if f.HourlyRate <= 0 {
		errs["hourlyRate"] = "Укажите стоимость часа"
	}
	if len(f.SubjectIDs) == 0 {
		errs["subjectIds"] = "Выберите хотя бы один предмет"
	}
	return errs
}

// LessonForm представляет форму создания занятия
type LessonForm struct {
	StudentID      int       `form:"studentId"`
	SubjectID      int       `form:"subjectId"`
	StartTime      time.Time `form:"startTime" time_format:"2006-01-02T15:04"`
	EndTime        time.Time `form:"endTime" time_format:"2006-01-02T15:04"`
	ConferenceLink string    `form:"conferenceLink"`
	WhiteboardLink string    `form:"whiteboardLink"`
}

// Validate проверяет форму занятия. Проверка выполняется до любого
// сетевого вызова.
func (f *LessonForm) Validate() Errors {
	errs := Errors{}
	if f.StudentID == 0 {
		errs["studentId"] = "Выберите студента"
	}
	if f.SubjectID == 0 {
		errs["subjectId"] = "Выберите предмет"
	}
	if f.StartTime.IsZero() {
		errs["startTime"] = "Укажите время начала"
	}
	if f.EndTime.IsZero() {
		errs["endTime"] = "Укажите время окончания"
	}
	if !f.StartTime.IsZero() && !f.EndTime.IsZero() && !f.EndTime.After(f.StartTime) {
		errs["endTime"] = "Время окончания должно быть позже времени начала"
	}
	if f.ConferenceLink == "" {
		errs["conferenceLink"] = "Укажите ссылку на конференцию"
	}
	if f.WhiteboardLink == "" {
		errs["whiteboardLink"] = "Укажите ссылку на интерактивную доску"
	}
	return errs
}

// ReviewForm представляет форму отзыва о занятии
type ReviewForm struct {
	LessonID  int    `form:"lessonId"`
	TeacherID int    `form:"teacherId"`
	Rating    int    `form:"rating"`
	Comment   string `form:"comment"`
}

// Validate проверяет форму отзыва
func (f *ReviewForm) Validate() Errors {
	errs := Errors{}
	if f.LessonID == 0 {
		errs["lessonId"] = "Не указано занятие"
	}
	if f.TeacherID == 0 {
		errs["teacherId"] = "Не указан преподаватель"
	}
	if f.Rating < 1 || f.Rating > 5 {
		errs["rating"] = "Оценка должна быть от 1 до 5"
	}
	return errs
}

// StudentProfileForm представляет форму профиля ученика
type StudentProfileForm struct {
	FirstName   string `form:"firstName"`
	LastName    string `form:"lastName"`
	MiddleName  string `form:"middleName"`
	BirthDate   string `form:"birthDate"`
	Gender      string `form:"gender"`
	ContactInfo string `form:"contactInfo"`
	PhotoBase64 string `form:"-"`
}

// Validate проверяет форму профиля ученика
func (f *StudentProfileForm) Validate() Errors {
	errs := Errors{}
	requireAll(errs, map[string]string{
		"lastName":  f.LastName,
		"firstName": f.FirstName,
		"birthDate": f.BirthDate,
		"gender":    f.Gender,
	})
	return errs
}

// TeacherProfileForm представляет форму профиля преподавателя
type TeacherProfileForm struct {
	StudentProfileForm
	Education             string  `form:"education"`
	ExperienceYears       int     `form:"experienceYears"`
	HourlyRate            float64 `form:"hourlyRate"`
	SubjectIDs            []int   `form:"subjectIds"`
	PreparationProgramIDs []int   `form:"preparationProgramIds"`
}

// Validate проверяет форму профиля преподавателя
func (f *TeacherProfileForm) Validate() Errors {
	errs := f.StudentProfileForm.Validate()
	if f.Education == "" {
		errs["education"] = "Укажите образование"
	}
	if f.HourlyRate <= 0 {
		errs["hourlyRate"] = "Укажите стоимость часа"
	}
	return errs
}

// requireAll помечает пустые обязательные поля
func requireAll(errs Errors, fields map[string]string) {
	for name, value := range fields {
		if value == "" {
			errs[name] = "Обязательное поле"
		}
	}
}
