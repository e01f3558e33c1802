package models

// ProjectPost is a project listing published by a founder looking for help.
// Category is conventionally repeated as the first tag, but nothing enforces
// that, so matching code must treat Tags as a free-form list that may or may
// not contain the category.
type ProjectPost struct {
	ID          string   `dynamodbav:"postId" json:"id"`
	UserID      string   `dynamodbav:"userId" json:"userId"`
	Title       string   `dynamodbav:"title" json:"title"`
	Description string   `dynamodbav:"description" json:"description"`
	Category    string   `dynamodbav:"category" json:"category"`
	Tags        []string `dynamodbav:"tags,omitempty" json:"tags"`
	ImageURL    string   `dynamodbav:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   string   `dynamodbav:"createdAt" json:"createdAt"`

	// Denormalized from the owning profile when the collection is fetched,
	// never written back to the table.
	Author     string `dynamodbav:"-" json:"author"`
	AuthorRole string `dynamodbav:"-" json:"authorRole"`
	Avatar     string `dynamodbav:"-" json:"avatar,omitempty"`
}

// PostsTable is the DynamoDB table name for project posts
const PostsTable = "ProjectPosts"
