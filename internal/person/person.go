// Package person generates synthetic person records from bundled word lists.
// All sampling goes through an injectable Source; the default uses
// crypto/rand — no math/rand, no side effects.
package person

// Person holds one fully generated record. The field set is fixed; a record
// has no identity beyond its values.
type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Sex       string `json:"sex"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Job       string `json:"job"`
	PhoneNum  string `json:"phone_num"`
}

// Sex labels.
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// Age group labels and thresholds for Occupation.
const (
	JobChild   = "Child"
	JobRetired = "Retired"

	childAgeLimit = 18 // below this: JobChild
	retirementAge = 80 // above this: JobRetired
)

// Default age bounds for Generate.
const (
	DefaultMinAge = 0
	DefaultMaxAge = 100
)

// emailProviders is the fixed set of domains used when synthesizing
// addresses.
var emailProviders = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"fastmail.com",
}
