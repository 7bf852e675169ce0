package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// PostRepository defines post persistence operations. Likes and comments are
// mutated with single-statement, id-addressed writes; concurrent like/unlike
// on one post serialize on the database row, not on in-process state.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddLike(ctx context.Context, like *model.Like) error
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (int64, error)
	ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	FindComment(ctx context.Context, postID, commentID uuid.UUID) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Likes", newestFirst).
		Preload("Comments", newestFirst).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Likes", newestFirst).
		Preload("Comments", newestFirst).
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

// AddLike inserts the like row. A second like by the same user violates the
// (post_id, user_id) primary key and comes back as gorm.ErrDuplicatedKey.
func (r *postRepository) AddLike(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// RemoveLike deletes by identity match, not by array position. Returns the
// number of rows removed; zero means the user never liked the post.
func (r *postRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *postRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	var likes []model.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *postRepository) FindComment(ctx context.Context, postID, commentID uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *postRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.Comment{}).Error
}

func (r *postRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
