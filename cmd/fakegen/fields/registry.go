package fields

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"pkg.jsn.cam/fakegen/pkg/fakegen"
	"pkg.jsn.cam/fakegen/pkg/fakegen/mutators"
	"pkg.jsn.cam/fakegen/pkg/generators/en"
)

var ErrUnknownField = errors.New("unknown field")

// Set is the collection of composite generators fields are built from
type Set struct {
	Address *en.UnitedStatesAddress
	Name    *en.Name
}

// Registry maps field names to fields built over set
type Registry map[string]Field

func NewRegistry(set Set) Registry {
	reg := Registry{}
	add := func(name, description string, gen fakegen.Generator[string]) {
		reg[name] = Field{Name: name, Description: description, Gen: gen}
	}

	a, n := set.Address, set.Name
	add("address.building", "Building number: 3 to 5 digits", fakegen.Mutate(a.BuildingNumber(), mutators.Itoa()))
	add("address.city", "City name, e.g. North Springville", a.City())
	add("address.community", "Community name, e.g. Park Village", a.Community())
	add("address.full", "Full address with state code and matching postcode", a.FullAddress())
	add("address.mailbox", "PO box", a.Mailbox())
	add("address.postcode", "Five digit postcode", a.Postcode())
	add("address.postcode_local", "ZIP+4 postcode", a.PostcodeWithLocal())
	add("address.secondary", "Apartment or suite", a.SecondaryAddress())
	add("address.state", "State name", a.State())
	add("address.state_code", "Two letter state code", a.StateCode())
	add("address.street", "Building number and street name", a.StreetAddress())
	add("address.street_name", "Street name, e.g. Jones Street", a.StreetName())
	add("address.timezone", "Time zone abbreviation", a.TimeZone())
	add("name.first", "First name", n.FirstName())
	add("name.last", "Last name", n.LastName())
	add("name.full", "First and last name", n.FullName())
	add("name.formal", "Prefix and full name, e.g. Dr. Grace Hughes", fakegen.Join(" ", n.Prefix(), n.FullName()))
	add("id.uuid", "Version 4 UUID", fakegen.UUID())
	add("id.license_plate", "License plate, e.g. 4ABC123", fakegen.Bothified("#???###"))
	return reg
}

// Get returns a field by name
func (reg Registry) Get(name string) (Field, error) {
	f, ok := reg[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return f, nil
}

// List returns all field names, sorted
func (reg Registry) List() []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe renders one "name  description" line per field
func (reg Registry) Describe() []string {
	var lines []string
	width := 0
	for _, name := range reg.List() {
		width = max(width, len(name))
	}
	for _, name := range reg.List() {
		lines = append(lines, fmt.Sprintf("%-"+strconv.Itoa(width)+"s  %s", name, reg[name].Description))
	}
	return lines
}
