package wordlist

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func TestLoadSet(t *testing.T) {
	s, err := LoadSet()
	if err != nil {
		t.Fatalf("LoadSet() error: %v", err)
	}

	tests := []struct {
		name  string
		words []string
	}{
		{"male first names", s.MaleFirst},
		{"female first names", s.FemaleFirst},
		{"last names", s.LastNames},
		{"occupations", s.Occupations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.words) == 0 {
				t.Fatal("list is empty")
			}
			for _, w := range tt.words {
				if w == "" {
					t.Error("blank entry survived load")
				}
				if w != strings.TrimSpace(w) {
					t.Errorf("entry %q has surrounding whitespace", w)
				}
			}
		})
	}
}

func TestLoadNormalizesCase(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     string
	}{
		{"male name capitalized", MaleFirst, "James"},
		{"female name capitalized", FemaleFirst, "Mary"},
		{"surname capitalized", LastNames, "Smith"},
		{"occupation title-cased", Occupations, "Software Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Load(tt.category)
			if err != nil {
				t.Fatalf("Load(%s) error: %v", tt.category, err)
			}
			if !contains(words, tt.want) {
				t.Errorf("Load(%s) missing %q", tt.category, tt.want)
			}
		})
	}
}

func TestLoadEveryWordTitleCased(t *testing.T) {
	for _, c := range []Category{MaleFirst, FemaleFirst, LastNames, Occupations} {
		words, err := Load(c)
		if err != nil {
			t.Fatalf("Load(%s) error: %v", c, err)
		}
		for _, entry := range words {
			for _, word := range strings.Fields(entry) {
				first := []rune(word)[0]
				if unicode.IsLetter(first) && !unicode.IsUpper(first) {
					t.Errorf("Load(%s): entry %q not title-cased", c, entry)
				}
			}
		}
	}
}

func TestLoadUnknownCategory(t *testing.T) {
	_, err := Load(Category("middle_names"))
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Load(unknown) error = %v, want ErrResourceNotFound", err)
	}
}

func contains(words []string, want string) bool {
	for _, w := range words {
		if w == want {
			return true
		}
	}
	return false
}
