package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// ProfileRepository defines profile persistence operations. Experience and
// education entries are addressed by their own ids; removals are single
// conditional deletes, never read-modify-write of the whole profile.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	FindAll(ctx context.Context) ([]model.Profile, error)
	AddExperience(ctx context.Context, exp *model.Experience) error
	RemoveExperience(ctx context.Context, profileID, entryID uuid.UUID) (int64, error)
	AddEducation(ctx context.Context, edu *model.Education) error
	RemoveEducation(ctx context.Context, profileID, entryID uuid.UUID) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// UpdateFields applies a partial update: only the supplied columns change.
func (r *profileRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		Preload("Owner").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		Preload("Owner").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *model.Experience) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

// RemoveExperience deletes one entry by id, scoped to the owning profile.
// Returns the number of rows removed so callers can distinguish a missing id.
func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, entryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&model.Experience{})
	return res.RowsAffected, res.Error
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *model.Education) error {
	return r.db.WithContext(ctx).Create(edu).Error
}

// RemoveEducation deletes one entry by id, scoped to the owning profile.
func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, entryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&model.Education{})
	return res.RowsAffected, res.Error
}

// newestFirst orders sub-collections the way entries were prepended upstream.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
