package imagegen

import (
	"strings"
	"testing"
)

func TestComposePrompt(t *testing.T) {
	testCases := []struct {
		name       string
		age        string
		gender     string
		userPrompt string
		want       string
	}{{
		name: "base only",
		want: BasePrompt,
	}, {
		name:   "age and gender",
		age:    "25-year-old",
		gender: "female",
		want:   BasePrompt + " Model characteristics: 25-year-old female.",
	}, {
		name: "age only keeps trailing space before period",
		age:  "young",
		want: BasePrompt + " Model characteristics: young .",
	}, {
		name:   "gender only",
		gender: "male",
		want:   BasePrompt + " Model characteristics: male.",
	}, {
		name:       "user prompt appended after characteristics",
		age:        "30s",
		gender:     "female",
		userPrompt: "walking on a rainy street",
		want:       BasePrompt + " Model characteristics: 30s female. walking on a rainy street",
	}, {
		name:       "user prompt without characteristics",
		userPrompt: "outdoor golden hour",
		want:       BasePrompt + " outdoor golden hour",
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComposePrompt(tc.age, tc.gender, tc.userPrompt)
			if got != tc.want {
				t.Fatalf("prompt = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestComposePromptDeterministic(t *testing.T) {
	first := ComposePrompt("20s", "female", "street style")
	for i := 0; i < 10; i++ {
		if got := ComposePrompt("20s", "female", "street style"); got != first {
			t.Fatalf("composition not deterministic: %q vs %q", got, first)
		}
	}
	if !strings.HasPrefix(first, BasePrompt) {
		t.Fatalf("prompt does not start with base instruction: %q", first)
	}
}
