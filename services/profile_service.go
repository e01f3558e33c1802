package services

import (
	"context"
	"fmt"
	"sort"

	"cofound_server/models"
	"cofound_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// ProfileService reads and writes member profiles.
type ProfileService struct {
	Dynamo *DynamoService
}

// FetchAllProfiles returns every public profile, newest first. A backend
// failure is logged and surfaces as an empty slice so one bad fetch cannot
// take down the feed; the caller renders it as the no-data state.
func (ps *ProfileService) FetchAllProfiles(ctx context.Context) []models.Profile {
	var profiles []models.Profile
	err := ps.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractBool(item, "isPublic")
	}, &profiles)
	if err != nil {
		log.Error().Err(err).Msg("fetching profiles failed")
		return nil
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt > profiles[j].CreatedAt
	})
	return profiles
}

// GetProfile retrieves a profile by user id.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, err
	}
	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile stores the member's edited profile. The profile page sends
// the complete record, so this is a plain overwrite keyed on the id.
func (ps *ProfileService) UpdateProfile(ctx context.Context, profile models.Profile) error {
	if profile.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	return ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile)
}

// DeleteAccount removes everything the member owns: their messages,
// favorites, posts and finally the profile itself. Partial failure aborts so
// the member can retry; nothing here is irreversible out of order.
func (ps *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := ps.deleteMessages(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if err := ps.deleteFavorites(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete favorites: %w", err)
	}
	if err := ps.deletePosts(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	if err := ps.Dynamo.DeleteItem(ctx, models.ProfilesTable, key); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	log.Info().Str("userId", userID).Msg("account deleted")
	return nil
}

func (ps *ProfileService) deleteMessages(ctx context.Context, userID string) error {
	var messages []models.Message
	err := ps.Dynamo.ScanWithFilter(ctx, models.MessagesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "fromId") == userID || utils.ExtractString(item, "toId") == userID
	}, &messages)
	if err != nil {
		return err
	}
	var requests []types.WriteRequest
	for _, msg := range messages {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"conversationId": &types.AttributeValueMemberS{Value: msg.ConversationID},
					"createdAt":      &types.AttributeValueMemberS{Value: msg.CreatedAt},
				},
			},
		})
	}
	if len(requests) == 0 {
		return nil
	}
	return ps.Dynamo.BatchWriteItems(ctx, models.MessagesTable, requests)
}

func (ps *ProfileService) deleteFavorites(ctx context.Context, userID string) error {
	items, err := ps.Dynamo.QueryItems(ctx, models.FavoritesTable, "userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return err
	}
	var requests []types.WriteRequest
	for _, item := range items {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"userId":  &types.AttributeValueMemberS{Value: userID},
					"itemKey": &types.AttributeValueMemberS{Value: utils.ExtractString(item, "itemKey")},
				},
			},
		})
	}
	if len(requests) == 0 {
		return nil
	}
	return ps.Dynamo.BatchWriteItems(ctx, models.FavoritesTable, requests)
}

func (ps *ProfileService) deletePosts(ctx context.Context, userID string) error {
	var posts []models.ProjectPost
	err := ps.Dynamo.ScanWithFilter(ctx, models.PostsTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "userId") == userID
	}, &posts)
	if err != nil {
		return err
	}
	var requests []types.WriteRequest
	for _, post := range posts {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"postId": &types.AttributeValueMemberS{Value: post.ID},
				},
			},
		})
	}
	if len(requests) == 0 {
		return nil
	}
	return ps.Dynamo.BatchWriteItems(ctx, models.PostsTable, requests)
}
