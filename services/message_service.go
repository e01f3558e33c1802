package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"cofound_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MessageService handles direct messages between members.
type MessageService struct {
	Dynamo   *DynamoService
	Profiles *ProfileService
}

// ConversationID builds the shared partition key for a pair of members,
// the same value regardless of who writes first.
func ConversationID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "#" + b
}

// Send stores a new message and returns it.
func (ms *MessageService) Send(ctx context.Context, fromID, toID, subject, content, postTitle string) (*models.Message, error) {
	if fromID == "" || toID == "" {
		return nil, errors.New("sender and recipient are required")
	}
	if content == "" {
		return nil, errors.New("message content is required")
	}
	msg := models.Message{
		ConversationID: ConversationID(fromID, toID),
		CreatedAt:      time.Now().UTC().Format(time.RFC3339Nano),
		MessageID:      uuid.NewString(),
		FromID:         fromID,
		ToID:           toID,
		Subject:        subject,
		Content:        content,
		PostTitle:      postTitle,
		IsRead:         false,
	}
	if err := ms.Dynamo.PutItem(ctx, models.MessagesTable, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Conversation returns every message between the two members, oldest first,
// with sender display fields filled in.
func (ms *MessageService) Conversation(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	items, err := ms.Dynamo.QueryItems(ctx, models.MessagesTable, "conversationId = :conversationId",
		map[string]types.AttributeValue{
			":conversationId": &types.AttributeValueMemberS{Value: ConversationID(userID, otherID)},
		}, nil, 0)
	if err != nil {
		return nil, err
	}
	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	ms.attachSenders(ctx, messages)
	return messages, nil
}

// MarkConversationRead marks every unread message from otherID to userID as
// read.
func (ms *MessageService) MarkConversationRead(ctx context.Context, userID, otherID string) error {
	messages, err := ms.Conversation(ctx, userID, otherID)
	if err != nil {
		return err
	}
	for _, msg := range messages {
		if msg.ToID != userID || msg.IsRead {
			continue
		}
		key := map[string]types.AttributeValue{
			"conversationId": &types.AttributeValueMemberS{Value: msg.ConversationID},
			"createdAt":      &types.AttributeValueMemberS{Value: msg.CreatedAt},
		}
		_, err := ms.Dynamo.UpdateItem(ctx, models.MessagesTable, "SET #isRead = :read", key,
			map[string]types.AttributeValue{
				":read": &types.AttributeValueMemberBOOL{Value: true},
			},
			map[string]string{"#isRead": "isRead"})
		if err != nil {
			return err
		}
	}
	return nil
}

// UnreadCount returns how many unread messages the member has, for the
// navbar badge. Degrades to zero on failure or no session.
func (ms *MessageService) UnreadCount(ctx context.Context, userID string) int {
	if userID == "" {
		return 0
	}
	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MessagesTable, models.MessagesToIndex,
		"toId = :toId",
		map[string]types.AttributeValue{
			":toId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("unread count query failed")
		return 0
	}
	count := 0
	for _, item := range items {
		if v, ok := item["isRead"].(*types.AttributeValueMemberBOOL); ok && !v.Value {
			count++
		}
	}
	return count
}

// Inbox returns every message the member sent or received, newest first,
// with sender display fields filled in.
func (ms *MessageService) Inbox(ctx context.Context, userID string) ([]models.Message, error) {
	received, err := ms.queryByIndex(ctx, models.MessagesToIndex, "toId = :id", userID)
	if err != nil {
		return nil, err
	}
	sent, err := ms.queryByIndex(ctx, models.MessagesFromIndex, "fromId = :id", userID)
	if err != nil {
		return nil, err
	}
	messages := append(received, sent...)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})
	ms.attachSenders(ctx, messages)
	return messages, nil
}

func (ms *MessageService) queryByIndex(ctx context.Context, index, condition, userID string) ([]models.Message, error) {
	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MessagesTable, index, condition,
		map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}
	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// attachSenders fills in sender name and avatar, one profile lookup per
// distinct sender. A deleted sender keeps the fallback name.
func (ms *MessageService) attachSenders(ctx context.Context, messages []models.Message) {
	cache := map[string]*models.Profile{}
	for i := range messages {
		profile, seen := cache[messages[i].FromID]
		if !seen {
			p, err := ms.Profiles.GetProfile(ctx, messages[i].FromID)
			if err != nil {
				p = nil
			}
			cache[messages[i].FromID] = p
			profile = p
		}
		if profile == nil {
			messages[i].From = unknownAuthorName
			continue
		}
		messages[i].From = profile.Name
		messages[i].Avatar = profile.Avatar
	}
}
