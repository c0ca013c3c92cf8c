package server

import (
	"net/http"
	"time"

	"video-quiz/internal/config"
	"video-quiz/internal/domain"
	"video-quiz/internal/handler"
	"video-quiz/internal/middleware"
	"video-quiz/internal/service"
	"video-quiz/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const bodyLimit = 1 * 1024 * 1024

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Videos  service.VideoService
	Quizzes service.QuizService
	// Cache is only pinged by the health check and may be nil.
	Cache domain.Cache
}

// NewApp builds the Fiber application with views, static assets, middleware
// and routes.
func NewApp(cfg *config.Config, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "video-quiz",
		Views:                 web.NewViewEngine(),
		ErrorHandler:          middleware.ErrorHandler(),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           2 * cfg.Server.ReadTimeout,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: int((24 * time.Hour).Seconds()),
	}))

	pages := handler.NewPageHandler(deps.Videos, deps.Quizzes)
	app.Get("/", pages.Home)
	app.Get("/quiz", pages.QuizForm)
	app.Post("/quiz", pages.SubmitQuiz)

	app.Get("/healthz", handler.NewHealthHandler(deps.Cache).Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := handler.NewAPIHandler(deps.Videos, deps.Quizzes)
	apiGroup := app.Group("/api")
	apiGroup.Get("/videos", api.ListVideos)
	apiGroup.Post("/upload_video", api.UploadVideo)
	apiGroup.Post("/analyze", api.Analyze)
	apiGroup.Post("/generate_quiz", api.GenerateQuiz)
	apiGroup.Post("/process", api.Process)

	return app
}
