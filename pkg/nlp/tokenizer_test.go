package nlp

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and splits",
			input: "Show Me Necklaces",
			want:  []string{"show", "necklaces"},
		},
		{
			name:  "strips punctuation without inserting spaces",
			input: "what's the price?",
			want:  []string{"whats", "price"},
		},
		{
			name:  "drops stopwords",
			input: "what is the status of my order",
			want:  []string{"what", "status", "my", "order"},
		},
		{
			name:  "retains duplicates in order",
			input: "ring ring ring",
			want:  []string{"ring", "ring", "ring"},
		},
		{
			name:  "keeps underscores and digits",
			input: "Silver_Ring costs 500",
			want:  []string{"silver_ring", "costs", "500"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "all stopwords",
			input: "the is and of",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hi there!",
		"Do you accept eSewa?",
		"show me the blue necklace",
		"I want about Product XYZ",
		"what is the status of order #123",
	}

	for _, input := range inputs {
		once := Normalize(input)
		again := Normalize(strings.Join(once, " "))
		if !reflect.DeepEqual(once, again) {
			t.Errorf("re-normalizing %q changed tokens: %v vs %v", input, once, again)
		}
	}
}
