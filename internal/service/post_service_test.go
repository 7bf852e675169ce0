package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "devconnect/internal/errors"
	"devconnect/internal/model"
)

func TestPostService_CreateCapturesAuthorSnapshot(t *testing.T) {
	userID := uuid.New()
	mockPosts := new(MockPostRepository)
	mockUsers := new(MockUserRepository)

	mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:     userID,
		Name:   "Ann",
		Avatar: "https://www.gravatar.com/avatar/abc",
	}, nil)
	mockPosts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

	svc := NewPostService(mockPosts, mockUsers)
	post, err := svc.Create(context.Background(), userID, "hello world")

	assert.NoError(t, err)
	assert.Equal(t, "Ann", post.Name)
	assert.Equal(t, "https://www.gravatar.com/avatar/abc", post.Avatar)
	assert.Equal(t, userID, post.UserID)
	mockPosts.AssertExpectations(t)
}

func TestPostService_Like(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name: "first like succeeds",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("AddLike", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil)
				m.On("ListLikes", mock.Anything, postID).Return([]model.Like{{PostID: postID, UserID: userID}}, nil)
			},
		},
		{
			name: "second like by same user fails",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("AddLike", mock.Anything, mock.AnythingOfType("*model.Like")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrAlreadyLiked,
		},
		{
			name: "post absent",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPosts := new(MockPostRepository)
			tt.setupMock(mockPosts)

			svc := NewPostService(mockPosts, new(MockUserRepository))
			likes, err := svc.Like(context.Background(), userID, postID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, likes)
			} else {
				assert.NoError(t, err)
				assert.Len(t, likes, 1)
			}
			mockPosts.AssertExpectations(t)
		})
	}
}

func TestPostService_UnlikeWithoutLikeFails(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	mockPosts := new(MockPostRepository)
	mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	mockPosts.On("RemoveLike", mock.Anything, postID, userID).Return(int64(0), nil)

	svc := NewPostService(mockPosts, new(MockUserRepository))
	likes, err := svc.Unlike(context.Background(), userID, postID)

	assert.ErrorIs(t, err, apperrors.ErrNotYetLiked)
	assert.Nil(t, likes)
	mockPosts.AssertExpectations(t)
}

func TestPostService_DeleteRequiresOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name          string
		actor         uuid.UUID
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:  "owner deletes",
			actor: owner,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: owner}, nil)
				m.On("Delete", mock.Anything, postID).Return(nil)
			},
		},
		{
			name:  "non-owner rejected",
			actor: stranger,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: owner}, nil)
			},
			expectedError: apperrors.ErrNotOwner,
		},
		{
			name:  "missing post",
			actor: owner,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPosts := new(MockPostRepository)
			tt.setupMock(mockPosts)

			svc := NewPostService(mockPosts, new(MockUserRepository))
			err := svc.Delete(context.Background(), tt.actor, postID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			// Delete must never run unless the ownership check passed.
			mockPosts.AssertExpectations(t)
		})
	}
}

func TestPostService_DeleteCommentOnlyByAuthor(t *testing.T) {
	author := uuid.New()
	postOwner := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	comment := &model.Comment{ID: commentID, PostID: postID, UserID: author, Text: "mine"}

	t.Run("post owner is not enough", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: postOwner}, nil)
		mockPosts.On("FindComment", mock.Anything, postID, commentID).Return(comment, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		comments, err := svc.DeleteComment(context.Background(), postOwner, postID, commentID)

		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
		assert.Nil(t, comments)
		mockPosts.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
	})

	t.Run("author deletes", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: postOwner}, nil)
		mockPosts.On("FindComment", mock.Anything, postID, commentID).Return(comment, nil)
		mockPosts.On("DeleteComment", mock.Anything, commentID).Return(nil)
		mockPosts.On("ListComments", mock.Anything, postID).Return([]model.Comment{}, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		comments, err := svc.DeleteComment(context.Background(), author, postID, commentID)

		assert.NoError(t, err)
		assert.Empty(t, comments)
		mockPosts.AssertExpectations(t)
	})

	t.Run("unknown comment id", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: postOwner}, nil)
		mockPosts.On("FindComment", mock.Anything, postID, commentID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPostService(mockPosts, new(MockUserRepository))
		_, err := svc.DeleteComment(context.Background(), author, postID, commentID)

		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
	})
}

func TestPostService_AddCommentSnapshotsAuthor(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	mockPosts := new(MockPostRepository)
	mockUsers := new(MockUserRepository)

	mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Ann", Avatar: "av"}, nil)
	mockPosts.On("AddComment", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.Name == "Ann" && c.Avatar == "av" && c.UserID == userID && c.ID != uuid.Nil
	})).Return(nil)
	mockPosts.On("ListComments", mock.Anything, postID).Return([]model.Comment{{PostID: postID, UserID: userID}}, nil)

	svc := NewPostService(mockPosts, mockUsers)
	comments, err := svc.AddComment(context.Background(), userID, postID, "nice")

	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	mockPosts.AssertExpectations(t)
}
