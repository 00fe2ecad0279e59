package en

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/fakegen/pkg/fakegen"
	"pkg.jsn.cam/fakegen/pkg/fakegen/fakegentest"
	"pkg.jsn.cam/fakegen/pkg/locale"
)

// fixedNames always returns the same first and last name and draws nothing.
type fixedNames struct {
	first, last string
}

func (f fixedNames) FirstName() fakegen.Generator[string] { return fakegen.Const(f.first) }
func (f fixedNames) LastName() fakegen.Generator[string]  { return fakegen.Const(f.last) }

func fixtureAddress(t *testing.T) *UnitedStatesAddress {
	t.Helper()
	meta := &locale.AddressMetadata{
		CityPrefix:       []string{"North"},
		CitySuffix:       []string{"ville"},
		StreetSuffix:     []string{"Street"},
		CommunityPrefix:  []string{"Park"},
		CommunitySuffix:  []string{"Village"},
		PostcodesByState: map[string]string{"CA": "900##", "NY": "122##"},
		States:           []string{"California", "New York"},
		StateCodes:       []string{"CA", "NY"},
	}
	addr, err := NewUnitedStatesAddress(meta, fixedNames{first: "Spring", last: "Jones"})
	require.NoError(t, err)
	return addr
}

func bundledAddress(t *testing.T) *UnitedStatesAddress {
	t.Helper()
	addr, _, err := NewUnitedStates(locale.Default())
	require.NoError(t, err)
	return addr
}

func assertConsumed(t *testing.T, r *fakegentest.Scripted) {
	t.Helper()
	ints, bools := r.Remaining()
	assert.Zero(t, ints, "unconsumed int draws")
	assert.Zero(t, bools, "unconsumed bool draws")
}

func TestCity_Scripted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ints  []int
		bools []bool
		want  string
	}{
		{"prefix and first name", []int{0, 0}, []bool{true, true}, "North Springville"},
		{"prefix and last name", []int{0, 0}, []bool{true, false}, "North Jonesville"},
		{"first name only", []int{0}, []bool{false, true}, "Springville"},
		{"last name only", []int{0}, []bool{false, false}, "Jonesville"},
	}

	addr := fixtureAddress(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := fakegentest.NewScripted(tt.ints, tt.bools)
			got, err := addr.City().Generate(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assertConsumed(t, r)
		})
	}
}

func TestStreetName_Scripted(t *testing.T) {
	t.Parallel()

	addr := fixtureAddress(t)

	r := fakegentest.NewScripted([]int{0}, []bool{false, false})
	assert.Equal(t, "Jones Street", addr.StreetName().Must(r))
	assertConsumed(t, r)

	r = fakegentest.NewScripted([]int{0, 0}, []bool{true, true})
	assert.Equal(t, "North Spring Street", addr.StreetName().Must(r))
	assertConsumed(t, r)
}

func TestFullAddress_Scripted(t *testing.T) {
	t.Parallel()

	addr := fixtureAddress(t)
	r := fakegentest.NewScripted(
		[]int{
			2, 1, 2, 3, // building number "###" -> 123
			0,          // street suffix
			1, 4, 5, 6, // "Suite ###"
			0, 0, // city prefix, city suffix
			1,    // state code NY
			7, 8, // postcode digits
		},
		[]bool{
			false, false, // street: no prefix, last name
			true,       // secondary address
			true, true, // city: prefix, first name
		},
	)

	got, err := addr.FullAddress().Generate(r)
	require.NoError(t, err)
	assert.Equal(t, "123 Jones Street, Suite 456, North Springville, NY 12278", got)
	assertConsumed(t, r)
}

func TestPostcodeByState(t *testing.T) {
	t.Parallel()

	addr := fixtureAddress(t)
	r := fakegen.NewSource(3)

	got, err := addr.PostcodeByState("CA", false).Generate(r)
	require.NoError(t, err)
	assert.Regexp(t, `^900\d{2}$`, got)

	got, err = addr.PostcodeByState("NY", true).Generate(r)
	require.NoError(t, err)
	assert.Regexp(t, `^122\d{2}-\d{4}$`, got)
}

func TestPostcodeByState_UnknownCode(t *testing.T) {
	t.Parallel()

	addr := fixtureAddress(t)
	for _, local := range []bool{false, true} {
		_, err := addr.PostcodeByState("ZZ", local).Generate(fakegen.NewSource(1))
		assert.ErrorIs(t, err, fakegen.ErrLookupFailure)
		assert.Contains(t, err.Error(), "ZZ")
	}
}

func TestFullAddress_StateMatchesPostcode(t *testing.T) {
	t.Parallel()

	addr := bundledAddress(t)
	tail := regexp.MustCompile(`, ([A-Z]{2}) (\d{5})$`)

	for seed := uint64(0); seed < 300; seed++ {
		full := addr.FullAddress().Must(fakegen.NewSource(seed))
		m := tail.FindStringSubmatch(full)
		require.NotNil(t, m, "unexpected shape: %q", full)

		pattern, err := addr.meta.PostcodePattern(m[1])
		require.NoError(t, err)
		fixed := strings.TrimRight(pattern, "#")
		assert.True(t, strings.HasPrefix(m[2], fixed),
			"postcode %s does not belong to state %s (pattern %s) in %q", m[2], m[1], pattern, full)
	}
}

func TestAddress_Deterministic(t *testing.T) {
	t.Parallel()

	addr := bundledAddress(t)
	gens := map[string]fakegen.Generator[string]{
		"full":      addr.FullAddress(),
		"street":    addr.StreetAddress(),
		"city":      addr.City(),
		"community": addr.Community(),
		"mailbox":   addr.Mailbox(),
		"timezone":  addr.TimeZone(),
		"state":     addr.State(),
	}

	for name, g := range gens {
		for seed := uint64(0); seed < 25; seed++ {
			a := g.Must(fakegen.NewSource(seed))
			b := g.Must(fakegen.NewSource(seed))
			assert.Equal(t, a, b, "%s seed %d", name, seed)
		}
	}
}

func TestAddress_Shapes(t *testing.T) {
	t.Parallel()

	addr := bundledAddress(t)
	r := fakegen.NewSource(2024)

	mailbox := regexp.MustCompile(`^PO Box \d{2,4}$`)
	secondary := regexp.MustCompile(`^(Apt\.|Suite) \d{3}$`)
	street := regexp.MustCompile(`^\d+ \S.* \S+$`)

	for range 200 {
		assert.Regexp(t, mailbox, addr.Mailbox().Must(r))
		assert.Regexp(t, secondary, addr.SecondaryAddress().Must(r))
		assert.Regexp(t, `^\d{5}$`, addr.Postcode().Must(r))
		assert.Regexp(t, `^\d{5}-\d{4}$`, addr.PostcodeWithLocal().Must(r))
		assert.Regexp(t, street, addr.StreetAddress().Must(r))
		assert.Contains(t, timeZones, addr.TimeZone().Must(r))
		assert.Contains(t, addr.meta.StateCodes, addr.StateCode().Must(r))

		n := addr.BuildingNumber().Must(r)
		assert.True(t, n >= 0 && n <= 99999, "building number %d", n)

		community := strings.Split(addr.Community().Must(r), " ")
		assert.Len(t, community, 2)
	}
}

func TestNewUnitedStatesAddress_InvalidMetadata(t *testing.T) {
	t.Parallel()

	_, err := NewUnitedStatesAddress(&locale.AddressMetadata{}, fixedNames{})
	assert.ErrorIs(t, err, locale.ErrInvalidMetadata)
}

func TestUnitedStatesAddress_Identity(t *testing.T) {
	t.Parallel()

	addr := fixtureAddress(t)
	assert.Equal(t, "United States", addr.Name())
	assert.Equal(t, "USA", addr.Code())
}
