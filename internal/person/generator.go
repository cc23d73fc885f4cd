package person

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/zarlcorp/persona/internal/wordlist"
)

// ErrInvalidRange reports an age range whose minimum exceeds its maximum.
var ErrInvalidRange = errors.New("person: invalid age range")

// Source yields uniform random ints in [0, n). Tests substitute a fixed
// sequence for deterministic output.
type Source interface {
	Intn(n int) int
}

// cryptoSource is the default Source, backed by crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// Generator produces random person records from a word-list set.
type Generator struct {
	lists *wordlist.Set
	src   Source
}

// New creates a generator with the default crypto/rand source.
func New(lists *wordlist.Set) *Generator {
	return NewWithSource(lists, cryptoSource{})
}

// NewWithSource creates a generator with a caller-supplied random source.
func NewWithSource(lists *wordlist.Set, src Source) *Generator {
	return &Generator{lists: lists, src: src}
}

// FirstName picks a first name and its sex label. An empty gender picks the
// list uniformly first; "female" selects the female list, anything else the
// male list.
func (g *Generator) FirstName(gender string) (name, sex string) {
	female := false
	switch strings.ToLower(gender) {
	case "":
		female = g.src.Intn(2) == 1
	case "female":
		female = true
	}

	if female {
		return g.pick(g.lists.FemaleFirst), SexFemale
	}
	return g.pick(g.lists.MaleFirst), SexMale
}

// LastName picks a surname.
func (g *Generator) LastName() string {
	return g.pick(g.lists.LastNames)
}

// Email joins the lowercased names as first.last@provider with a provider
// drawn from the fixed set.
func (g *Generator) Email(first, last string) string {
	provider := g.pick(emailProviders)
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + provider
}

// Age returns a uniform integer in [minAge, maxAge] inclusive.
func (g *Generator) Age(minAge, maxAge int) (int, error) {
	if minAge > maxAge {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, minAge, maxAge)
	}
	return minAge + g.src.Intn(maxAge-minAge+1), nil
}

// Occupation returns the job label for an age: fixed labels for children and
// retirees, otherwise a uniform pick from the occupations list.
func (g *Generator) Occupation(age int) string {
	switch {
	case age < childAgeLimit:
		return JobChild
	case age > retirementAge:
		return JobRetired
	}
	return g.pick(g.lists.Occupations)
}

// PhoneNumber produces "(DDD) DDD-DDDD" with uniform digits. No validation
// against real area codes.
func (g *Generator) PhoneNumber() string {
	return fmt.Sprintf("(%03d) %03d-%04d",
		g.src.Intn(1000), g.src.Intn(1000), g.src.Intn(10000))
}

// Generate assembles one record: first name and sex together, then last
// name, email, age, occupation, phone. Any failure aborts the whole call.
func (g *Generator) Generate(gender string, minAge, maxAge int) (Person, error) {
	first, sex := g.FirstName(gender)
	last := g.LastName()
	email := g.Email(first, last)

	age, err := g.Age(minAge, maxAge)
	if err != nil {
		return Person{}, err
	}

	return Person{
		FirstName: first,
		LastName:  last,
		Sex:       sex,
		Email:     email,
		Age:       age,
		Job:       g.Occupation(age),
		PhoneNum:  g.PhoneNumber(),
	}, nil
}

// GenerateN produces count records with the same parameters.
func (g *Generator) GenerateN(count int, gender string, minAge, maxAge int) ([]Person, error) {
	people := make([]Person, 0, count)
	for range count {
		p, err := g.Generate(gender, minAge, maxAge)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}

// pick returns a random element from a string slice.
func (g *Generator) pick(s []string) string {
	return s[g.src.Intn(len(s))]
}
