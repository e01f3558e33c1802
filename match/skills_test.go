package match

import (
	"reflect"
	"testing"

	"cofound_server/models"
)

func TestSkillSuggestionsDedupeFirstSpellingWins(t *testing.T) {
	profiles := []models.Profile{
		{Skills: []string{"React", "Go"}},
		{Skills: []string{"react", "Sales"}},
	}
	got := SkillSuggestions(profiles, nil)
	want := []string{"Go", "React", "Sales"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SkillSuggestions = %v, want %v", got, want)
	}
}

func TestSkillSuggestionsExcludeSelectedExactMatch(t *testing.T) {
	profiles := []models.Profile{{Skills: []string{"Go", "Rust"}}}
	got := SkillSuggestions(profiles, []string{"Go"})
	if !reflect.DeepEqual(got, []string{"Rust"}) {
		t.Errorf("SkillSuggestions = %v, want [Rust]", got)
	}
	// A selected pill in a different case does not hide the suggestion.
	got = SkillSuggestions(profiles, []string{"go"})
	if !reflect.DeepEqual(got, []string{"Go", "Rust"}) {
		t.Errorf("SkillSuggestions = %v, want [Go Rust]", got)
	}
}

func TestSkillSuggestionsEmptyProfiles(t *testing.T) {
	if got := SkillSuggestions(nil, nil); got != nil {
		t.Errorf("SkillSuggestions = %v, want nil", got)
	}
}
