// Package locale holds the per-locale word lists and lookup tables that
// composite generators draw from. Records are decoded once, validated, and
// then treated as read-only, so they may be shared between goroutines.
package locale

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/fakegen/pkg/fakegen"
)

var (
	ErrInvalidMetadata = errors.New("invalid locale metadata")
	ErrUnknownLocale   = errors.New("unknown locale")
)

// AddressMetadata backs address generators.
type AddressMetadata struct {
	CityPrefix       []string          `yaml:"cityPrefix" json:"cityPrefix"`
	CitySuffix       []string          `yaml:"citySuffix" json:"citySuffix"`
	StreetSuffix     []string          `yaml:"streetSuffix" json:"streetSuffix"`
	CommunityPrefix  []string          `yaml:"communityPrefix" json:"communityPrefix"`
	CommunitySuffix  []string          `yaml:"communitySuffix" json:"communitySuffix"`
	PostcodesByState map[string]string `yaml:"postcodesByState" json:"postcodesByState"`
	States           []string          `yaml:"states" json:"states"`
	StateCodes       []string          `yaml:"stateCodes" json:"stateCodes"`
}

// Validate checks that every list is non-empty and that every state code
// has a postcode pattern.
func (m *AddressMetadata) Validate() error {
	lists := []struct {
		field string
		items []string
	}{
		{"cityPrefix", m.CityPrefix},
		{"citySuffix", m.CitySuffix},
		{"streetSuffix", m.StreetSuffix},
		{"communityPrefix", m.CommunityPrefix},
		{"communitySuffix", m.CommunitySuffix},
		{"states", m.States},
		{"stateCodes", m.StateCodes},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalidMetadata, l.field)
		}
	}

	for _, code := range m.StateCodes {
		if m.PostcodesByState[code] == "" {
			return fmt.Errorf("%w: state code %s has no postcode pattern", ErrInvalidMetadata, code)
		}
	}
	return nil
}

// PostcodePattern returns the postcode pattern registered for code.
func (m *AddressMetadata) PostcodePattern(code string) (string, error) {
	pattern, ok := m.PostcodesByState[code]
	if !ok {
		return "", fmt.Errorf("%w: invalid state code %s provided", fakegen.ErrLookupFailure, code)
	}
	return pattern, nil
}

// NameMetadata backs person-name generators.
type NameMetadata struct {
	FirstName []string `yaml:"firstName" json:"firstName"`
	LastName  []string `yaml:"lastName" json:"lastName"`
	Prefix    []string `yaml:"prefix" json:"prefix"`
	Suffix    []string `yaml:"suffix" json:"suffix"`
}

func (m *NameMetadata) Validate() error {
	lists := []struct {
		field string
		items []string
	}{
		{"firstName", m.FirstName},
		{"lastName", m.LastName},
		{"prefix", m.Prefix},
		{"suffix", m.Suffix},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalidMetadata, l.field)
		}
	}
	return nil
}

// ParseAddress decodes and validates an address document. JSON documents
// are accepted as well as YAML.
func ParseAddress(data []byte) (*AddressMetadata, error) {
	var m AddressMetadata
	if err := decode(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseName decodes and validates a name document.
func ParseName(data []byte) (*NameMetadata, error) {
	var m NameMetadata
	if err := decode(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

type record interface {
	Validate() error
}

func decode(data []byte, rec record) error {
	if err := yaml.Unmarshal(data, rec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return rec.Validate()
}
