package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cosolve/internal/models"
	"cosolve/internal/repository"
)

func TestAddComment(t *testing.T) {
	t.Run("blank text is rejected without touching the repos", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)

		svc := NewCommentService(commentRepo, postRepo, new(MockUserRepository))

		comment, err := svc.AddComment(context.Background(), "post1", "   ", "user1")

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrEmptyCommentText)
		assert.ErrorIs(t, err, ErrValidation)
		postRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("comment on a missing post is refused", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		svc := NewCommentService(commentRepo, postRepo, new(MockUserRepository))

		comment, err := svc.AddComment(context.Background(), "missing", "anyone there?", "user1")

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("comment carries the public author projection", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		userRepo := new(MockUserRepository)

		postRepo.On("GetByID", mock.Anything, "post1").
			Return(&models.Post{PostID: "post1", AuthorID: "user2"}, nil)
		commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.PostID == "post1" && c.AuthorID == "user1" && c.Text == "I can help"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Comment).CommentID = "comment1"
		}).Return(nil)
		userRepo.On("GetAuthors", mock.Anything, []string{"user1"}).
			Return(map[string]models.Author{"user1": {UserID: "user1", Username: "alice"}}, nil)

		svc := NewCommentService(commentRepo, postRepo, userRepo)

		comment, err := svc.AddComment(context.Background(), "post1", "I can help", "user1")

		require.NoError(t, err)
		assert.Equal(t, "comment1", comment.CommentID)
		require.NotNil(t, comment.Author)
		assert.Equal(t, "alice", comment.Author.Username)
		commentRepo.AssertExpectations(t)
	})
}

func TestListForPost(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	commentRepo.On("GetByPostID", mock.Anything, "post1").Return([]models.Comment{
		{CommentID: "comment2", PostID: "post1", Text: "still available?"},
		{CommentID: "comment1", PostID: "post1", Text: "I can help"},
	}, nil)

	svc := NewCommentService(commentRepo, new(MockPostRepository), new(MockUserRepository))

	comments, err := svc.ListForPost(context.Background(), "post1")

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "comment2", comments[0].CommentID)
}
