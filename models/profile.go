package models

// Experience is one entry of a profile's work history.
type Experience struct {
	Role        string `dynamodbav:"role,omitempty" json:"role"`
	Company     string `dynamodbav:"company,omitempty" json:"company"`
	Period      string `dynamodbav:"period,omitempty" json:"period,omitempty"`
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
}

// Profile defines the structure for member profiles. Role and Status are
// free-form user input ("Founder", "co-founder", "Ikke aktiv", ...), and
// Skills keep whatever casing the member typed, so matching code has to
// normalize on its side.
type Profile struct {
	ID         string       `dynamodbav:"userId" json:"id"`
	Name       string       `dynamodbav:"name" json:"name"`
	Role       string       `dynamodbav:"role,omitempty" json:"role"`
	Status     string       `dynamodbav:"status,omitempty" json:"status"`
	Avatar     string       `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	Bio        string       `dynamodbav:"bio,omitempty" json:"bio"`
	Skills     []string     `dynamodbav:"skills,omitempty" json:"skills"`
	Experience []Experience `dynamodbav:"experience,omitempty" json:"experience,omitempty"`
	LinkedIn   string       `dynamodbav:"linkedin,omitempty" json:"linkedin,omitempty"`
	IsPublic   bool         `dynamodbav:"isPublic" json:"isPublic"`
	CreatedAt  string       `dynamodbav:"createdAt" json:"createdAt"`
}

// ProfilesTable is the DynamoDB table name for member profiles
const ProfilesTable = "Profiles"

// Canonical role spellings. Members type whatever they want, so these are
// only the conventional values, not an enum.
const (
	RoleFounder   = "Founder"
	RoleCoFounder = "Co-founder"
)
