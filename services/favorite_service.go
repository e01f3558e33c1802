package services

import (
	"context"
	"errors"
	"time"

	"cofound_server/models"
	"cofound_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// FavoriteService stores which posts and members a user has saved.
type FavoriteService struct {
	Dynamo *DynamoService
}

// FetchFavoriteIDs returns the item ids the user has favorited for one
// kind. No session or a backend failure degrades to an empty set; favorites
// are cosmetic and must never block the feed.
func (fs *FavoriteService) FetchFavoriteIDs(ctx context.Context, userID, kind string) map[string]bool {
	ids := map[string]bool{}
	if userID == "" {
		return ids
	}
	items, err := fs.Dynamo.QueryItems(ctx, models.FavoritesTable, "userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("fetching favorites failed")
		return ids
	}
	for _, item := range items {
		if utils.ExtractString(item, "kind") != kind {
			continue
		}
		if id := utils.ExtractString(item, "itemId"); id != "" {
			ids[id] = true
		}
	}
	return ids
}

// Toggle flips one favorite and reports the new state: true when the item is
// now a favorite, false when it was removed.
func (fs *FavoriteService) Toggle(ctx context.Context, userID, kind, itemID string) (bool, error) {
	key := map[string]types.AttributeValue{
		"userId":  &types.AttributeValueMemberS{Value: userID},
		"itemKey": &types.AttributeValueMemberS{Value: models.FavoriteItemKey(kind, itemID)},
	}
	_, err := fs.Dynamo.GetItem(ctx, models.FavoritesTable, key)
	if err == nil {
		if err := fs.Dynamo.DeleteItem(ctx, models.FavoritesTable, key); err != nil {
			return true, err
		}
		return false, nil
	}
	if !errors.Is(err, ErrItemNotFound) {
		return false, err
	}
	favorite := models.Favorite{
		UserID:    userID,
		ItemKey:   models.FavoriteItemKey(kind, itemID),
		Kind:      kind,
		ItemID:    itemID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := fs.Dynamo.PutItem(ctx, models.FavoritesTable, favorite); err != nil {
		return false, err
	}
	return true, nil
}
