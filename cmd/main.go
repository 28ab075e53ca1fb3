package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/config"
	"github.com/GrinOnFace/Educat/internal/guard"
	"github.com/GrinOnFace/Educat/internal/handlers"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/repository"
	"github.com/GrinOnFace/Educat/internal/services"
	"github.com/GrinOnFace/Educat/pkg/database"
	"github.com/GrinOnFace/Educat/pkg/photo"

	"github.com/gin-gonic/gin"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Подключаемся к локальной базе сессий
	db, err := database.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Клиент REST API маркетплейса
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	// Создаем репозитории
	sessionRepo := repository.NewSessionRepository(db.DB)

	// Обработчик фотографий профиля
	photos := photo.NewProcessor(cfg.MaxPhotoSize, cfg.PhotoMaxDimension)

	// Создаем сервисы
	authService := services.NewAuthService(client, sessionRepo, cfg.SessionSecret)
	lessonService := services.NewLessonService(client, cfg.MaxAttachmentSize)
	profileService := services.NewProfileService(client, photos)
	tutorService := services.NewTutorService(client)
	studentService := services.NewStudentService(client)
	subjectService := services.NewSubjectService(client)

	// Создаем обработчики
	authHandler := handlers.NewAuthHandler(authService, subjectService, photos)
	dashboardHandler := handlers.NewDashboardHandler(authService, lessonService)
	scheduleHandler := handlers.NewScheduleHandler(authService, lessonService)
	lessonHandler := handlers.NewLessonHandler(authService, lessonService, studentService, subjectService)
	studentHandler := handlers.NewStudentHandler(authService, studentService)
	tutorHandler := handlers.NewTutorHandler(authService, tutorService, subjectService)
	profileHandler := handlers.NewProfileHandler(authService, profileService)

	router := gin.Default()

	// Middleware
	router.Use(handlers.CORSMiddleware())
	router.Use(handlers.SessionMiddleware(authService))

	// Статические файлы и шаблоны
	router.Static("/static", "./web/static")
	router.LoadHTMLGlob("web/templates/*")

	// Публичные страницы: доступны только без сессии
	public := router.Group("/", handlers.Guard(guard.PublicAccess()))
	{
		public.GET("/", authHandler.Home)
		public.GET("/login", authHandler.ShowLogin)
		public.POST("/login", authHandler.Login)
		public.GET("/register", authHandler.ShowRegister)
		public.POST("/register", authHandler.Register)
	}

	// Выход доступен из любого состояния
	router.POST("/logout", authHandler.Logout)

	// Защищенные страницы: нужна сессия, роль не важна
	protected := router.Group("/", handlers.Guard(guard.ProtectedAccess()))
	{
		protected.GET("/dashboard", dashboardHandler.Dashboard)
		protected.GET("/schedule", scheduleHandler.Schedule)
		protected.GET("/schedule/day/:day", scheduleHandler.Schedule)
		protected.GET("/profile", profileHandler.Show)
		protected.POST("/profile", profileHandler.Update)
		protected.GET("/lessons/:id", lessonHandler.Details)
	}

	// Страницы преподавателя
	teacher := router.Group("/", handlers.Guard(guard.RoleAccess(models.RoleTeacher)))
	{
		teacher.GET("/lessons", lessonHandler.List)
		teacher.GET("/create-lesson", lessonHandler.ShowCreate)
		teacher.POST("/create-lesson", lessonHandler.Create)
		teacher.GET("/students", studentHandler.List)
		teacher.POST("/students/requests/:id/accept", studentHandler.AcceptRequest)
		teacher.POST("/students/requests/:id/reject", studentHandler.RejectRequest)
		teacher.POST("/students/:id/remove", studentHandler.Remove)
		teacher.POST("/lessons/:id/attachments", lessonHandler.UploadAttachment)
		teacher.DELETE("/api/lessons/:id/attachments/:attachmentId", lessonHandler.DeleteAttachment)
	}

	// Страницы ученика
	student := router.Group("/", handlers.Guard(guard.RoleAccess(models.RoleStudent)))
	{
		student.GET("/search", tutorHandler.Search)
		student.GET("/teachers", tutorHandler.MyTeachers)
		student.GET("/tutors/:id", tutorHandler.TutorProfile)
		student.POST("/tutors/:id/request", tutorHandler.SendRequest)
		student.POST("/lessons/:id/review", lessonHandler.CreateReview)
	}

	// Неизвестные маршруты уводим на дашборд; guard на дашборде сам
	// решит, пускать ли дальше
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	// Запускаем сервер
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("Starting Educat web client on %s", addr)
	log.Printf("Backend API: %s", cfg.APIBaseURL)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
