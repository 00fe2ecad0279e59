package en

import (
	"pkg.jsn.cam/fakegen/pkg/fakegen"
	"pkg.jsn.cam/fakegen/pkg/generators"
	"pkg.jsn.cam/fakegen/pkg/locale"
)

// Name generates English person names.
type Name struct {
	meta *locale.NameMetadata
}

var _ generators.Name = (*Name)(nil)

func NewName(meta *locale.NameMetadata) (*Name, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return &Name{meta: meta}, nil
}

func (n *Name) FirstName() fakegen.Generator[string] {
	return fakegen.OneOf(n.meta.FirstName...)
}

func (n *Name) LastName() fakegen.Generator[string] {
	return fakegen.OneOf(n.meta.LastName...)
}

// Prefix yields an honorific such as "Dr."
func (n *Name) Prefix() fakegen.Generator[string] {
	return fakegen.OneOf(n.meta.Prefix...)
}

// Suffix yields a generational or professional suffix such as "Jr."
func (n *Name) Suffix() fakegen.Generator[string] {
	return fakegen.OneOf(n.meta.Suffix...)
}

// FullName is a first name, a space, then a last name.
func (n *Name) FullName() fakegen.Generator[string] {
	return fakegen.Join(" ", n.FirstName(), n.LastName())
}
