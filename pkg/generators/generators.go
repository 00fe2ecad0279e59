// Package generators declares the locale-independent shape of composite
// generators. Locale packages such as en implement them.
package generators

import "pkg.jsn.cam/fakegen/pkg/fakegen"

// Address generates the parts of a postal address for one locale.
type Address interface {
	// Name is the human-readable locale name, Code its short code.
	Name() string
	Code() string

	BuildingNumber() fakegen.Generator[int]
	Community() fakegen.Generator[string]
	SecondaryAddress() fakegen.Generator[string]
	Postcode() fakegen.Generator[string]
	TimeZone() fakegen.Generator[string]
	City() fakegen.Generator[string]
	StreetName() fakegen.Generator[string]
	StreetAddress() fakegen.Generator[string]
	FullAddress() fakegen.Generator[string]
	Mailbox() fakegen.Generator[string]
}

// Name generates person names.
type Name interface {
	FirstName() fakegen.Generator[string]
	LastName() fakegen.Generator[string]
	FullName() fakegen.Generator[string]
}
