// Package cli implements persona's command-line subcommands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zarlcorp/persona/internal/display"
	"github.com/zarlcorp/persona/internal/person"
	"github.com/zarlcorp/persona/internal/wordlist"
)

// CmdGenerate generates and prints person records.
func CmdGenerate(args []string) {
	if err := runGenerate(os.Stdout, os.Stderr, args); err != nil {
		fmt.Fprintf(os.Stderr, "persona: %v\n", err)
		os.Exit(1)
	}
}

// CmdEmail generates and prints a single random email address.
func CmdEmail() {
	if err := runEmail(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "persona: %v\n", err)
		os.Exit(1)
	}
}

// runGenerate is the testable core of CmdGenerate.
func runGenerate(w, errw io.Writer, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(errw)
	count := fs.Int("n", 1, "number of records to generate")
	format := fs.String("format", "table", "output format: table, structured, or json")
	gender := fs.String("gender", "", "gender to generate: male or female (default random)")
	minAge := fs.Int("min-age", person.DefaultMinAge, "minimum age, inclusive")
	maxAge := fs.Int("max-age", person.DefaultMaxAge, "maximum age, inclusive")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", *count)
	}

	f, err := display.ParseFormat(*format)
	if err != nil {
		return err
	}

	lists, err := wordlist.LoadSet()
	if err != nil {
		return err
	}

	gen := person.New(lists)
	people, err := gen.GenerateN(*count, *gender, *minAge, *maxAge)
	if err != nil {
		return err
	}

	return display.Write(w, f, people)
}

// runEmail is the testable core of CmdEmail.
func runEmail(w io.Writer) error {
	lists, err := wordlist.LoadSet()
	if err != nil {
		return err
	}

	gen := person.New(lists)
	first, _ := gen.FirstName("")
	last := gen.LastName()
	_, err = fmt.Fprintln(w, gen.Email(first, last))
	return err
}
