package normalize

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	n, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Lowercasing and punctuation removal",
			input:    "Hello, World!",
			expected: "hello world",
		},
		{
			name:     "Stopwords removed",
			input:    "this is a test of the system",
			expected: "test system",
		},
		{
			name:     "Plural nouns lemmatized",
			input:    "Companies reported strong sales",
			expected: "company reported strong sale",
		},
		{
			name:     "Numbers kept",
			input:    "profit grew 20% in 2025",
			expected: "profit grew 20 2025",
		},
		{
			name:     "Possessive fragment dropped",
			input:    "Apple's revenue",
			expected: "apple revenue",
		},
		{
			name:     "Only stopwords",
			input:    "the and of a",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	n, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	input := "Apple Inc. reports record quarterly revenue amid AI push."
	first := n.Normalize(input)
	for i := 0; i < 10; i++ {
		if got := n.Normalize(input); got != first {
			t.Fatalf("Normalize is not deterministic: got %q, expected %q", got, first)
		}
	}
}

func TestLemmatize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"companies", "company"},
		{"sales", "sale"},
		{"investments", "investment"},
		{"men", "man"},
		{"indices", "index"},
		{"analyses", "analysis"},
		{"news", "news"},
		{"business", "business"},
		{"robotics", "robotics"},
		{"analytics", "analytics"},
		{"status", "status"},
		{"crisis", "crisis"},
		{"loss", "loss"},
		{"boxes", "box"},
		{"crashes", "crash"},
		{"gas", "gas"},
		{"revenue", "revenue"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := Lemmatize(tc.input); got != tc.expected {
				t.Errorf("Lemmatize(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
