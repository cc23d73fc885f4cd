// Package display renders person records as aligned text or structured
// output. Pure transforms of already-built records, no state.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/zarlcorp/persona/internal/person"
)

// Format selects an output rendering.
type Format int

const (
	FormatTable Format = iota
	FormatStructured
	FormatJSON
)

// ParseFormat maps a CLI flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, nil
	case "structured", "details":
		return FormatStructured, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("display: unknown format %q", s)
}

// Border frames the structured person block.
const Border = "---------------------------------------------"

// OneLine renders a record as one fixed-width table row:
// name, age, sex, job, phone, email.
func OneLine(p person.Person) string {
	fullName := p.FirstName + " " + p.LastName
	return fmt.Sprintf("%-20s %3d %-6s %-29s %-14s %s",
		fullName, p.Age, p.Sex, p.Job, p.PhoneNum, p.Email)
}

// Structured renders a record as a bordered key-value block.
func Structured(p person.Person) string {
	var b strings.Builder
	b.WriteString(Border + "\n")
	b.WriteString("          PERSON DETAILS\n")
	b.WriteString(Border + "\n")
	fmt.Fprintf(&b, "%-15s: %s\n", "First Name", p.FirstName)
	fmt.Fprintf(&b, "%-15s: %s\n", "Last Name", p.LastName)
	fmt.Fprintf(&b, "%-15s: %s\n", "Sex", p.Sex)
	fmt.Fprintf(&b, "%-15s: %d\n", "Age", p.Age)
	fmt.Fprintf(&b, "%-15s: %s\n", "Job", p.Job)
	fmt.Fprintf(&b, "%-15s: %s\n", "Phone Num", p.PhoneNum)
	fmt.Fprintf(&b, "%-15s: %s\n", "Email", p.Email)
	b.WriteString(Border + "\n")
	return b.String()
}

// Write renders records in the given format, one after another.
func Write(w io.Writer, f Format, people []person.Person) error {
	switch f {
	case FormatTable:
		for _, p := range people {
			if _, err := fmt.Fprintln(w, OneLine(p)); err != nil {
				return err
			}
		}
		return nil

	case FormatStructured:
		for _, p := range people {
			if _, err := io.WriteString(w, Structured(p)); err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(people) == 1 {
			return enc.Encode(people[0])
		}
		return enc.Encode(people)
	}

	return fmt.Errorf("display: unknown format %d", f)
}
