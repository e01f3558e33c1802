package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestExtractString(t *testing.T) {
	item := map[string]types.AttributeValue{
		"name":  &types.AttributeValueMemberS{Value: "Ola"},
		"wrong": &types.AttributeValueMemberN{Value: "42"},
	}
	if got := ExtractString(item, "name"); got != "Ola" {
		t.Errorf("ExtractString = %q, want %q", got, "Ola")
	}
	if got := ExtractString(item, "wrong"); got != "" {
		t.Errorf("ExtractString on number = %q, want empty", got)
	}
	if got := ExtractString(item, "missing"); got != "" {
		t.Errorf("ExtractString on missing key = %q, want empty", got)
	}
}

func TestExtractBool(t *testing.T) {
	item := map[string]types.AttributeValue{
		"isPublic": &types.AttributeValueMemberBOOL{Value: true},
	}
	if !ExtractBool(item, "isPublic") {
		t.Errorf("ExtractBool = false, want true")
	}
	if ExtractBool(item, "missing") {
		t.Errorf("ExtractBool on missing key = true, want false")
	}
}
