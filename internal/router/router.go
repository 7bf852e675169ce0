package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"devconnect/internal/auth"
	"devconnect/internal/handler"
)

// Register wires routes and middleware. The route shapes are kept exactly as
// existing clients expect them, including the mixed public/private profile
// surface and the custom token header.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	postHandler *handler.PostHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authed := auth.Middleware(jwtService)

	api := e.Group("/api")

	// Users and sessions
	api.POST("/user", authHandler.Register)
	api.POST("/auth", authHandler.Login)
	api.GET("/auth", authHandler.Current, authed)

	// Profiles
	api.GET("/profile/me", profileHandler.Mine, authed)
	api.GET("/profile", profileHandler.All)
	api.GET("/profile/user/:user_id", profileHandler.ByUser)
	api.POST("/profile", profileHandler.Upsert, authed)
	api.DELETE("/profile", profileHandler.DeleteAccount, authed)
	api.PUT("/profile/experience", profileHandler.AddExperience, authed)
	api.DELETE("/profile/experience/:exp_id", profileHandler.RemoveExperience, authed)
	api.PUT("/profile/education", profileHandler.AddEducation, authed)
	api.DELETE("/profile/education/:edu_id", profileHandler.RemoveEducation, authed)
	api.GET("/profile/github/:username", profileHandler.GithubRepos)

	// Posts
	posts := api.Group("/posts", authed)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.DELETE("/:id", postHandler.Delete)
	posts.PUT("/like/:id", postHandler.Like)
	posts.PUT("/unlike/:id", postHandler.Unlike)
	posts.POST("/comment/:id", postHandler.Comment)
	posts.DELETE("/:post_id/comment/:comment_id", postHandler.DeleteComment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
