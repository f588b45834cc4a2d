package service

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"cosolve/internal/models"
	"cosolve/internal/repository"
	"cosolve/internal/storage"
)

// BookmarkResult tags the outcome of a bookmark toggle.
type BookmarkResult string

const (
	BookmarkSaved   BookmarkResult = "saved"
	BookmarkUnsaved BookmarkResult = "unsaved"
)

type CreatePostRequest struct {
	AuthorID    string
	Title       string
	Description string
	Category    string
	Location    string
	Image       io.Reader // nil when the post has no image
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByCategory(ctx context.Context, category string, location, status *string) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	SetStatus(ctx context.Context, postID, status, actingUserID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, actingUserID string) error
	ToggleBookmark(ctx context.Context, userID, postID string) (BookmarkResult, error)
}

type postService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	imageService ImageService
	storage      storage.Storage
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository,
	userRepo repository.UserRepository, imageService ImageService, storage storage.Storage) PostService {
	return &postService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		imageService: imageService,
		storage:      storage,
	}
}

// authorizeOwner is the single authorization rule for post mutations:
// only the recorded author may edit or delete. The comparison is on the
// canonical user id, never a display name.
func authorizeOwner(post *models.Post, actingUserID string) error {
	if post.AuthorID != actingUserID {
		return ErrForbidden
	}
	return nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Location == "" {
		return nil, ErrMissingFields
	}
	if !models.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	// The image pipeline runs before anything is persisted; its failure
	// aborts creation so no post points at a missing image.
	var imageURL *string
	if req.Image != nil {
		url, err := p.imageService.ProcessAndUpload(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	post := &models.Post{
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		Image:       imageURL,
		Category:    req.Category,
		Location:    req.Location,
		Status:      models.StatusOpen,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return p.decorateOne(ctx, post)
}

func (p *postService) ListAll(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.List(ctx, repository.ListPostsParams{})
	if err != nil {
		return nil, err
	}
	return p.decorate(ctx, posts)
}

func (p *postService) ListByCategory(ctx context.Context, category string, location, status *string) ([]models.Post, error) {
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	posts, err := p.postRepo.List(ctx, repository.ListPostsParams{
		Category: &category,
		Location: location,
		Status:   status,
	})
	if err != nil {
		return nil, err
	}
	return p.decorate(ctx, posts)
}

func (p *postService) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	posts, err := p.postRepo.List(ctx, repository.ListPostsParams{AuthorID: &authorID})
	if err != nil {
		return nil, err
	}
	return p.decorate(ctx, posts)
}

func (p *postService) SetStatus(ctx context.Context, postID, status, actingUserID string) (*models.Post, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(post, actingUserID); err != nil {
		return nil, err
	}

	updated, err := p.postRepo.UpdateStatus(ctx, postID, status)
	if err != nil {
		return nil, err
	}

	return p.decorateOne(ctx, updated)
}

func (p *postService) DeletePost(ctx context.Context, postID, actingUserID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := authorizeOwner(post, actingUserID); err != nil {
		return err
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	// Object storage cleanup is best effort: the post and its comments are
	// already gone, a leaked object is only garbage.
	if post.Image != nil {
		if err := p.storage.DeleteImage(ctx, *post.Image); err != nil {
			logrus.WithError(err).WithField("postId", postID).Warn("failed to delete post image from storage")
		}
	}

	return nil
}

func (p *postService) ToggleBookmark(ctx context.Context, userID, postID string) (BookmarkResult, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return "", err
	}

	added, err := p.userRepo.AddBookmark(ctx, userID, postID)
	if err != nil {
		return "", err
	}
	if added {
		return BookmarkSaved, nil
	}

	if _, err := p.userRepo.RemoveBookmark(ctx, userID, postID); err != nil {
		return "", err
	}
	return BookmarkUnsaved, nil
}

// decorate attaches the public author projection and the newest-first
// comment list to every post.
func (p *postService) decorate(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	authorIDs := make([]string, 0, len(posts))
	postIDs := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.PostID)
		if !seen[post.AuthorID] {
			seen[post.AuthorID] = true
			authorIDs = append(authorIDs, post.AuthorID)
		}
	}

	authors, err := p.userRepo.GetAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	comments, err := p.commentRepo.GetByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if author, ok := authors[posts[i].AuthorID]; ok {
			posts[i].Author = &author
		}
		posts[i].Comments = comments[posts[i].PostID]
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}

	return posts, nil
}

func (p *postService) decorateOne(ctx context.Context, post *models.Post) (*models.Post, error) {
	decorated, err := p.decorate(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &decorated[0], nil
}
