package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnect/internal/github"
	"devconnect/internal/model"
	"devconnect/internal/service"
)

// ProfileHandler handles profile endpoints, the experience/education
// sub-resources and the GitHub repo listing.
type ProfileHandler struct {
	profileService service.ProfileService
	github         *github.Client
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, githubClient *github.Client) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		github:         githubClient,
	}
}

// ProfileRequest represents a profile create/update request.
type ProfileRequest struct {
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubUsername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
	Facebook       string `json:"facebook"`
}

// ExperienceRequest represents a work-history entry.
type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest represents a study-history entry.
type EducationRequest struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldOfStudy" validate:"required"`
	From         string `json:"from" validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Mine godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/me [get]
// @Security TokenAuth
func (h *ProfileHandler) Mine(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.Mine(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// All godoc
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) All(c echo.Context) error {
	profiles, err := h.profileService.All(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// ByUser godoc
// @Summary Get a profile by user id
// @Tags profile
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/user/{user_id} [get]
func (h *ProfileHandler) ByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := h.profileService.ByUserID(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary Create or update the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ProfileRequest true "Profile fields"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [post]
// @Security TokenAuth
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Upsert(c.Request().Context(), userID, service.ProfileInput{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
		Facebook:       req.Facebook,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount godoc
// @Summary Delete the authenticated user's posts, profile and account
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [delete]
// @Security TokenAuth
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.profileService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// AddExperience godoc
// @Summary Add a work-history entry
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ExperienceRequest true "Experience entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/experience [put]
// @Security TokenAuth
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.AddExperience(c.Request().Context(), userID, model.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience godoc
// @Summary Remove a work-history entry by id
// @Tags profile
// @Produce json
// @Param exp_id path string true "Experience entry ID"
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/experience/{exp_id} [delete]
// @Security TokenAuth
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entryID, err := pathID(c, "exp_id")
	if err != nil {
		return err
	}

	profile, err := h.profileService.RemoveExperience(c.Request().Context(), userID, entryID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation godoc
// @Summary Add a study-history entry
// @Tags profile
// @Accept json
// @Produce json
// @Param request body EducationRequest true "Education entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/education [put]
// @Security TokenAuth
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.AddEducation(c.Request().Context(), userID, model.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation godoc
// @Summary Remove a study-history entry by id
// @Tags profile
// @Produce json
// @Param edu_id path string true "Education entry ID"
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/education/{edu_id} [delete]
// @Security TokenAuth
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entryID, err := pathID(c, "edu_id")
	if err != nil {
		return err
	}

	profile, err := h.profileService.RemoveEducation(c.Request().Context(), userID, entryID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GithubRepos godoc
// @Summary List a user's public GitHub repositories
// @Tags profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} github.Repo
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.github.UserRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, repos)
}
