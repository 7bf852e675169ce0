package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

// ProfileInput carries the upsert payload. Skills arrive as a comma-separated
// string and are normalized to a trimmed ordered list.
type ProfileInput struct {
	Status         string
	Skills         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Linkedin       string
	Instagram      string
	Facebook       string
}

// ProfileService handles profile CRUD, the experience/education
// sub-collections and the account-deletion cascade.
type ProfileService interface {
	Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.Profile, error)
	Mine(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	All(ctx context.Context) ([]model.Profile, error)
	ByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	AddExperience(ctx context.Context, userID uuid.UUID, exp model.Experience) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, edu model.Education) (*model.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Upsert creates the caller's profile or partially updates it: only supplied
// fields replace stored ones.
func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.Profile, error) {
	skills := normalizeSkills(in.Skills)

	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if existing != nil {
		fields := map[string]interface{}{
			"status": in.Status,
			"skills": skills,
		}
		setIfPresent(fields, "company", in.Company)
		setIfPresent(fields, "website", in.Website)
		setIfPresent(fields, "location", in.Location)
		setIfPresent(fields, "bio", in.Bio)
		setIfPresent(fields, "github_username", in.GithubUsername)
		setIfPresent(fields, "social_youtube", in.Youtube)
		setIfPresent(fields, "social_twitter", in.Twitter)
		setIfPresent(fields, "social_linkedin", in.Linkedin)
		setIfPresent(fields, "social_instagram", in.Instagram)
		setIfPresent(fields, "social_facebook", in.Facebook)

		if err := s.profileRepo.UpdateFields(ctx, existing.ID, fields); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		return s.profileRepo.FindByUserID(ctx, userID)
	}

	profile := &model.Profile{
		UserID:         userID,
		Status:         in.Status,
		Skills:         skills,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social: model.SocialLinks{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Linkedin:  in.Linkedin,
			Instagram: in.Instagram,
			Facebook:  in.Facebook,
		},
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return s.profileRepo.FindByUserID(ctx, userID)
}

// Mine returns the caller's own profile.
func (s *profileService) Mine(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return s.find(ctx, userID)
}

// All lists every profile with the owner's name and avatar preloaded.
func (s *profileService) All(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// ByUserID returns the profile owned by the given user.
func (s *profileService) ByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return s.find(ctx, userID)
}

// AddExperience prepends a work-history entry to the caller's profile.
func (s *profileService) AddExperience(ctx context.Context, userID uuid.UUID, exp model.Experience) (*model.Profile, error) {
	profile, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ID = uuid.New()
	exp.ProfileID = profile.ID
	if err := s.profileRepo.AddExperience(ctx, &exp); err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}
	return s.find(ctx, userID)
}

// RemoveExperience deletes an entry by id. An id not present on the caller's
// profile fails with a not-found error and leaves existing entries untouched.
func (s *profileService) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error) {
	profile, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.profileRepo.RemoveExperience(ctx, profile.ID, entryID)
	if err != nil {
		return nil, fmt.Errorf("remove experience: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrEntryNotFound
	}
	return s.find(ctx, userID)
}

// AddEducation prepends a study-history entry to the caller's profile.
func (s *profileService) AddEducation(ctx context.Context, userID uuid.UUID, edu model.Education) (*model.Profile, error) {
	profile, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu.ID = uuid.New()
	edu.ProfileID = profile.ID
	if err := s.profileRepo.AddEducation(ctx, &edu); err != nil {
		return nil, fmt.Errorf("add education: %w", err)
	}
	return s.find(ctx, userID)
}

// RemoveEducation deletes an entry by id, failing gracefully when absent.
func (s *profileService) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error) {
	profile, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.profileRepo.RemoveEducation(ctx, profile.ID, entryID)
	if err != nil {
		return nil, fmt.Errorf("remove education: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrEntryNotFound
	}
	return s.find(ctx, userID)
}

// DeleteAccount removes the user's posts, profile and identity as one unit.
// The repository runs the cascade in a single transaction, so a failure
// leaves nothing half-deleted.
func (s *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.userRepo.DeleteCascade(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (s *profileService) find(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

// normalizeSkills turns "Go, SQL ,, Docker" into ["Go","SQL","Docker"],
// preserving input order.
func normalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func setIfPresent(fields map[string]interface{}, column, value string) {
	if value != "" {
		fields[column] = value
	}
}
