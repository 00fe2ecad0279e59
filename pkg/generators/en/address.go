// Package en implements English-language generators: person names and
// United States addresses.
package en

import (
	"fmt"
	"strconv"
	"strings"

	"pkg.jsn.cam/fakegen/pkg/fakegen"
	"pkg.jsn.cam/fakegen/pkg/generators"
	"pkg.jsn.cam/fakegen/pkg/locale"
)

// Locale is the bundled locale directory these generators read.
const Locale = "en_US"

var (
	buildingNumberFormats   = []string{"#####", "####", "###"}
	secondaryAddressFormats = []string{"Apt. ###", "Suite ###"}
	mailboxFormats          = []string{"PO Box ##", "PO Box ###", "PO Box ####"}
	timeZones               = []string{"HAT", "AST", "PT", "MT", "CT", "ET"}
)

const (
	postcodeFormat      = "#####"
	postcodeLocalFormat = "#####-####"
	localExtension      = "-####"
)

// NameSource supplies the given and family names that city and street
// names are built from.
type NameSource interface {
	FirstName() fakegen.Generator[string]
	LastName() fakegen.Generator[string]
}

// UnitedStatesAddress generates United States address parts.
type UnitedStatesAddress struct {
	meta  *locale.AddressMetadata
	names NameSource
}

var _ generators.Address = (*UnitedStatesAddress)(nil)

func NewUnitedStatesAddress(meta *locale.AddressMetadata, names NameSource) (*UnitedStatesAddress, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return &UnitedStatesAddress{meta: meta, names: names}, nil
}

// NewUnitedStates loads the bundled en_US name and address metadata from l.
func NewUnitedStates(l *locale.Loader) (*UnitedStatesAddress, *Name, error) {
	nameMeta, err := l.LoadName(Locale)
	if err != nil {
		return nil, nil, err
	}
	addrMeta, err := l.LoadAddress(Locale)
	if err != nil {
		return nil, nil, err
	}

	names, err := NewName(nameMeta)
	if err != nil {
		return nil, nil, err
	}
	addr, err := NewUnitedStatesAddress(addrMeta, names)
	if err != nil {
		return nil, nil, err
	}
	return addr, names, nil
}

func (a *UnitedStatesAddress) Name() string { return "United States" }

func (a *UnitedStatesAddress) Code() string { return "USA" }

// BuildingNumber has 5, 4 or 3 digits, so leading zeros shorten it.
func (a *UnitedStatesAddress) BuildingNumber() fakegen.Generator[int] {
	return func(r fakegen.Source) (int, error) {
		format, err := fakegen.Pick(buildingNumberFormats, r)
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(fakegen.Numerify(format, r))
	}
}

func (a *UnitedStatesAddress) Community() fakegen.Generator[string] {
	return fakegen.Join(" ",
		fakegen.OneOf(a.meta.CommunityPrefix...),
		fakegen.OneOf(a.meta.CommunitySuffix...),
	)
}

func (a *UnitedStatesAddress) SecondaryAddress() fakegen.Generator[string] {
	return numerifiedOneOf(secondaryAddressFormats)
}

func (a *UnitedStatesAddress) Postcode() fakegen.Generator[string] {
	return fakegen.Numerified(postcodeFormat)
}

// PostcodeWithLocal is a ZIP+4 code
func (a *UnitedStatesAddress) PostcodeWithLocal() fakegen.Generator[string] {
	return fakegen.Numerified(postcodeLocalFormat)
}

// PostcodeByState yields a postcode matching the pattern registered for
// stateCode, with a ZIP+4 extension when local is set. An unknown code
// fails with fakegen.ErrLookupFailure when invoked.
func (a *UnitedStatesAddress) PostcodeByState(stateCode string, local bool) fakegen.Generator[string] {
	return func(r fakegen.Source) (string, error) {
		pattern, err := a.meta.PostcodePattern(stateCode)
		if err != nil {
			return "", err
		}
		postcode := fakegen.Numerify(pattern, r)
		if local {
			postcode = fakegen.Numerify(postcode+localExtension, r)
		}
		return postcode, nil
	}
}

func (a *UnitedStatesAddress) State() fakegen.Generator[string] {
	return fakegen.OneOf(a.meta.States...)
}

func (a *UnitedStatesAddress) StateCode() fakegen.Generator[string] {
	return fakegen.OneOf(a.meta.StateCodes...)
}

func (a *UnitedStatesAddress) TimeZone() fakegen.Generator[string] {
	return fakegen.OneOf(timeZones...)
}

// City attaches the suffix directly to the name, e.g. "North Springville".
func (a *UnitedStatesAddress) City() fakegen.Generator[string] {
	return a.placeName(a.meta.CitySuffix, "")
}

// StreetName separates the suffix with a space, e.g. "Jones Street".
func (a *UnitedStatesAddress) StreetName() fakegen.Generator[string] {
	return a.placeName(a.meta.StreetSuffix, " ")
}

// placeName draws, in order: prefix coin, prefix (if the coin was true),
// name-type coin, the first or last name, then the suffix.
func (a *UnitedStatesAddress) placeName(suffixes []string, sep string) fakegen.Generator[string] {
	return func(r fakegen.Source) (string, error) {
		var sb strings.Builder

		if r.Bool() {
			prefix, err := fakegen.Pick(a.meta.CityPrefix, r)
			if err != nil {
				return "", err
			}
			sb.WriteString(prefix)
			sb.WriteByte(' ')
		}

		name := a.names.LastName()
		if r.Bool() {
			name = a.names.FirstName()
		}
		n, err := name(r)
		if err != nil {
			return "", err
		}

		suffix, err := fakegen.Pick(suffixes, r)
		if err != nil {
			return "", err
		}

		sb.WriteString(n)
		sb.WriteString(sep)
		sb.WriteString(suffix)
		return sb.String(), nil
	}
}

func (a *UnitedStatesAddress) StreetAddress() fakegen.Generator[string] {
	return fakegen.Join(" ",
		fakegen.Mutate(a.BuildingNumber(), fakegen.Transform(strconv.Itoa)),
		a.StreetName(),
	)
}

// FullAddress renders "street, [secondary, ]city, ST 12345". The postcode
// is looked up for the same state code that is rendered.
func (a *UnitedStatesAddress) FullAddress() fakegen.Generator[string] {
	return func(r fakegen.Source) (string, error) {
		var sb strings.Builder

		street, err := a.StreetAddress()(r)
		if err != nil {
			return "", err
		}
		sb.WriteString(street)
		sb.WriteString(", ")

		if r.Bool() {
			secondary, err := a.SecondaryAddress()(r)
			if err != nil {
				return "", err
			}
			sb.WriteString(secondary)
			sb.WriteString(", ")
		}

		city, err := a.City()(r)
		if err != nil {
			return "", err
		}
		sb.WriteString(city)
		sb.WriteString(", ")

		code, err := a.StateCode()(r)
		if err != nil {
			return "", err
		}
		postcode, err := a.PostcodeByState(code, false)(r)
		if err != nil {
			return "", fmt.Errorf("full address: %w", err)
		}
		sb.WriteString(code)
		sb.WriteByte(' ')
		sb.WriteString(postcode)

		return sb.String(), nil
	}
}

func (a *UnitedStatesAddress) Mailbox() fakegen.Generator[string] {
	return numerifiedOneOf(mailboxFormats)
}

func numerifiedOneOf(formats []string) fakegen.Generator[string] {
	return func(r fakegen.Source) (string, error) {
		format, err := fakegen.Pick(formats, r)
		if err != nil {
			return "", err
		}
		return fakegen.Numerify(format, r), nil
	}
}
