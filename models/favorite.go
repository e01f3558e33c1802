package models

// Favorite kinds: a member can favorite project posts and other members.
const (
	FavoriteKindProject = "project"
	FavoriteKindUser    = "user"
)

// Favorite is one saved item. ItemKey is the table sort key, "kind#itemId",
// so one query by userId returns both kinds.
type Favorite struct {
	UserID    string `dynamodbav:"userId" json:"userId"`
	ItemKey   string `dynamodbav:"itemKey" json:"-"`
	Kind      string `dynamodbav:"kind" json:"kind"`
	ItemID    string `dynamodbav:"itemId" json:"itemId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// FavoriteItemKey builds the sort key for a favorite entry.
func FavoriteItemKey(kind, itemID string) string {
	return kind + "#" + itemID
}

// FavoritesTable is the DynamoDB table name for favorites
const FavoritesTable = "Favorites"
