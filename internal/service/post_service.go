package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

// PostService handles posts and their like/comment sub-collections.
type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
	Like(ctx context.Context, userID, postID uuid.UUID) ([]model.Like, error)
	Unlike(ctx context.Context, userID, postID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, userID, postID uuid.UUID, text string) ([]model.Comment, error)
	DeleteComment(ctx context.Context, userID, postID, commentID uuid.UUID) ([]model.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create stores a new post with the author's name and avatar captured at
// creation time.
func (s *postService) Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	post := &model.Post{
		UserID:   userID,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Text:     text,
		Likes:    []model.Like{},
		Comments: []model.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Get returns a single post by id.
func (s *postService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// Delete removes a post after verifying the caller owns it.
func (s *postService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := requireOwner(
		func() (*model.Post, error) { return s.postRepo.FindByID(ctx, postID) },
		func(p *model.Post) uuid.UUID { return p.UserID },
		apperrors.ErrPostNotFound,
		userID,
	)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Like adds the caller to the post's like set. The set holds at most one
// entry per user; a second like fails and changes nothing.
func (s *postService) Like(ctx context.Context, userID, postID uuid.UUID) ([]model.Like, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	like := &model.Like{PostID: postID, UserID: userID}
	if err := s.postRepo.AddLike(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyLiked
		}
		return nil, fmt.Errorf("add like: %w", err)
	}
	return s.postRepo.ListLikes(ctx, postID)
}

// Unlike removes the caller's like by identity match.
func (s *postService) Unlike(ctx context.Context, userID, postID uuid.UUID) ([]model.Like, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	rows, err := s.postRepo.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("remove like: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrNotYetLiked
	}
	return s.postRepo.ListLikes(ctx, postID)
}

// AddComment prepends a comment with a fresh id and an author snapshot.
func (s *postService) AddComment(ctx context.Context, userID, postID uuid.UUID, text string) ([]model.Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	comment := &model.Comment{
		ID:     uuid.New(),
		PostID: postID,
		UserID: userID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   text,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return s.postRepo.ListComments(ctx, postID)
}

// DeleteComment removes a comment; only its author may do so, regardless of
// who owns the post.
func (s *postService) DeleteComment(ctx context.Context, userID, postID, commentID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := requireOwner(
		func() (*model.Comment, error) { return s.postRepo.FindComment(ctx, postID, commentID) },
		func(c *model.Comment) uuid.UUID { return c.UserID },
		apperrors.ErrCommentNotFound,
		userID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.DeleteComment(ctx, comment.ID); err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return s.postRepo.ListComments(ctx, postID)
}
