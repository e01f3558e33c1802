package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString pulls a string attribute out of a raw DynamoDB item,
// returning "" when the attribute is missing or not a string.
func ExtractString(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

// ExtractBool pulls a bool attribute out of a raw DynamoDB item, returning
// false when missing or not a bool.
func ExtractBool(item map[string]types.AttributeValue, key string) bool {
	if v, ok := item[key].(*types.AttributeValueMemberBOOL); ok {
		return v.Value
	}
	return false
}
