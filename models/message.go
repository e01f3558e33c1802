package models

// Message is one direct message between two members. ConversationID is the
// sorted pair of the two user ids, so both directions of a conversation land
// under the same partition key with CreatedAt as the sort key.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	FromID         string `dynamodbav:"fromId" json:"fromId"`
	ToID           string `dynamodbav:"toId" json:"toId"`
	Subject        string `dynamodbav:"subject,omitempty" json:"subject,omitempty"`
	Content        string `dynamodbav:"content" json:"content"`
	PostTitle      string `dynamodbav:"postTitle,omitempty" json:"postTitle,omitempty"`
	IsRead         bool   `dynamodbav:"isRead" json:"isRead"`

	// Sender display fields, filled in from the profiles table on read.
	From   string `dynamodbav:"-" json:"from,omitempty"`
	Avatar string `dynamodbav:"-" json:"avatar,omitempty"`
}

// MessagesTable is the DynamoDB table name for direct messages
const MessagesTable = "Messages"

// GSI names used by inbox and unread-count queries.
const (
	MessagesToIndex   = "toId-createdAt-index"
	MessagesFromIndex = "fromId-createdAt-index"
)
