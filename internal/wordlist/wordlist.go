// Package wordlist loads the bundled name and occupation lists.
// Lists are embedded at build time and read-only after load.
package wordlist

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed data/*.txt
var data embed.FS

// ErrResourceNotFound reports a missing, unreadable, or empty bundled list.
var ErrResourceNotFound = errors.New("wordlist: resource not found")

// Category names a bundled word list.
type Category string

const (
	MaleFirst   Category = "first_names_male"
	FemaleFirst Category = "first_names_female"
	LastNames   Category = "last_names"
	Occupations Category = "occupations"
)

// titleCaser normalizes raw entries: census-style uppercase names become
// "James", lowercase job titles become "Software Engineer".
var titleCaser = cases.Title(language.English)

// Load reads one category, one entry per line. Blank lines, surrounding
// whitespace, and '#' comment lines are dropped; every entry is title-cased.
func Load(c Category) ([]string, error) {
	raw, err := data.ReadFile("data/" + string(c) + ".txt")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, c)
	}

	var words []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, titleCaser.String(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceNotFound, c, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrResourceNotFound, c)
	}

	return words, nil
}

// Set holds every list the generator samples from.
type Set struct {
	MaleFirst   []string
	FemaleFirst []string
	LastNames   []string
	Occupations []string
}

// LoadSet loads all categories. Call once at startup; the result is safe to
// share since it is never mutated afterward.
func LoadSet() (*Set, error) {
	s := &Set{}
	for _, c := range []struct {
		cat Category
		dst *[]string
	}{
		{MaleFirst, &s.MaleFirst},
		{FemaleFirst, &s.FemaleFirst},
		{LastNames, &s.LastNames},
		{Occupations, &s.Occupations},
	} {
		words, err := Load(c.cat)
		if err != nil {
			return nil, err
		}
		*c.dst = words
	}
	return s, nil
}
