package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cofound_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Fallbacks used when a post's author profile is gone or private.
const (
	unknownAuthorName = "Ukjent"
	unknownAuthorRole = "Bruker"
	defaultAvatarURL  = "https://api.dicebear.com/7.x/avataaars/svg?seed=Guest"
)

// ErrNotPostOwner is returned when someone edits or deletes a post they do
// not own.
var ErrNotPostOwner = errors.New("post does not belong to this user")

// PostService reads and writes project posts.
type PostService struct {
	Dynamo   *DynamoService
	Profiles *ProfileService
}

// FetchAllPosts returns every project post, newest first, with author name,
// role and avatar denormalized from the owning profile the way the feed
// expects them. Failures are logged and surface as an empty slice.
func (ps *PostService) FetchAllPosts(ctx context.Context) []models.ProjectPost {
	var posts []models.ProjectPost
	if err := ps.Dynamo.ScanWithFilter(ctx, models.PostsTable, nil, &posts); err != nil {
		log.Error().Err(err).Msg("fetching project posts failed")
		return nil
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	ps.attachAuthors(ctx, posts)
	return posts
}

// GetPostsByUser returns one member's posts, newest first.
func (ps *PostService) GetPostsByUser(ctx context.Context, userID string) []models.ProjectPost {
	var posts []models.ProjectPost
	err := ps.Dynamo.ScanWithFilter(ctx, models.PostsTable, func(item map[string]types.AttributeValue) bool {
		if v, ok := item["userId"].(*types.AttributeValueMemberS); ok {
			return v.Value == userID
		}
		return false
	}, &posts)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("fetching user's posts failed")
		return nil
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	ps.attachAuthors(ctx, posts)
	return posts
}

// GetPostByID retrieves one post.
func (ps *PostService) GetPostByID(ctx context.Context, postID string) (*models.ProjectPost, error) {
	key := map[string]types.AttributeValue{
		"postId": &types.AttributeValueMemberS{Value: postID},
	}
	item, err := ps.Dynamo.GetItem(ctx, models.PostsTable, key)
	if err != nil {
		return nil, err
	}
	var post models.ProjectPost
	if err := attributevalue.UnmarshalMap(item, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post: %w", err)
	}
	return &post, nil
}

// AddPost stores a new post for the given owner and returns it with its
// generated id.
func (ps *PostService) AddPost(ctx context.Context, post models.ProjectPost) (*models.ProjectPost, error) {
	if post.UserID == "" {
		return nil, errors.New("post owner is required")
	}
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := ps.Dynamo.PutItem(ctx, models.PostsTable, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost overwrites an existing post after checking ownership.
func (ps *PostService) UpdatePost(ctx context.Context, post models.ProjectPost) (*models.ProjectPost, error) {
	existing, err := ps.GetPostByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != post.UserID {
		return nil, ErrNotPostOwner
	}
	post.CreatedAt = existing.CreatedAt
	if err := ps.Dynamo.PutItem(ctx, models.PostsTable, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post after checking ownership.
func (ps *PostService) DeletePost(ctx context.Context, postID, userID string) error {
	existing, err := ps.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotPostOwner
	}
	key := map[string]types.AttributeValue{
		"postId": &types.AttributeValueMemberS{Value: postID},
	}
	return ps.Dynamo.DeleteItem(ctx, models.PostsTable, key)
}

// attachAuthors fills in each post's author display fields from the owning
// profile, one lookup per distinct owner.
func (ps *PostService) attachAuthors(ctx context.Context, posts []models.ProjectPost) {
	cache := map[string]*models.Profile{}
	for i := range posts {
		profile, seen := cache[posts[i].UserID]
		if !seen {
			p, err := ps.Profiles.GetProfile(ctx, posts[i].UserID)
			if err != nil {
				if !errors.Is(err, ErrItemNotFound) {
					log.Warn().Err(err).Str("userId", posts[i].UserID).Msg("author lookup failed")
				}
				p = nil
			}
			cache[posts[i].UserID] = p
			profile = p
		}
		if profile == nil {
			posts[i].Author = unknownAuthorName
			posts[i].AuthorRole = unknownAuthorRole
			posts[i].Avatar = defaultAvatarURL
			continue
		}
		posts[i].Author = profile.Name
		posts[i].AuthorRole = profile.Role
		posts[i].Avatar = profile.Avatar
		if posts[i].Avatar == "" {
			posts[i].Avatar = defaultAvatarURL
		}
	}
}
