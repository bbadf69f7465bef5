package career

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_CoversEveryRole(t *testing.T) {
	c := DefaultCatalog()

	require.Equal(t, Roles(), c.Roles())
	for _, r := range Roles() {
		assert.NotEmpty(t, c.RequiredSkills(r), "role %s has no requirements", r)
		_, priced := c.salaries[r]
		assert.True(t, priced, "role %s has no salary band", r)
	}
	for _, d := range DegreeCategories() {
		assert.True(t, d.Valid())
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	band := SalaryBand{Min: 1, Max: 3, Avg: 2}

	tests := []struct {
		name string
		data CatalogData
	}{
		{
			name: "unknown role",
			data: CatalogData{Roles: []RoleProfile{{Role: "Astronaut", Salary: band}}},
		},
		{
			name: "duplicate role",
			data: CatalogData{Roles: []RoleProfile{
				{Role: RoleConsultant, Salary: band},
				{Role: RoleConsultant, Salary: band},
			}},
		},
		{
			name: "avg outside band",
			data: CatalogData{Roles: []RoleProfile{{Role: RoleConsultant, Salary: SalaryBand{Min: 1, Max: 3, Avg: 9}}}},
		},
		{
			name: "zero salary min",
			data: CatalogData{Roles: []RoleProfile{{Role: RoleConsultant, Salary: SalaryBand{Min: 0, Max: 3, Avg: 2}}}},
		},
		{
			name: "negative salary",
			data: CatalogData{Roles: []RoleProfile{{Role: RoleConsultant, Salary: SalaryBand{Min: -5, Max: 3, Avg: 2}}}},
		},
		{
			name: "blank skill",
			data: CatalogData{Roles: []RoleProfile{{Role: RoleConsultant, RequiredSkills: []string{"Excel", "  "}, Salary: band}}},
		},
		{
			name: "blank canonical",
			data: CatalogData{Synonyms: []SynonymClass{{Canonical: " "}}},
		},
		{
			name: "duplicate canonical",
			data: CatalogData{Synonyms: []SynonymClass{{Canonical: "SQL"}, {Canonical: "sql"}}},
		},
		{
			name: "degree references role outside catalog",
			data: CatalogData{
				Roles:   []RoleProfile{{Role: RoleConsultant, Salary: band}},
				Degrees: []DegreeProfile{{Category: DegreeBusiness, Roles: []Role{RoleProductManager}}},
			},
		},
		{
			name: "unknown degree category",
			data: CatalogData{Degrees: []DegreeProfile{{Category: "Alchemy"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}
}

func TestNewCatalog_Empty(t *testing.T) {
	c, err := NewCatalog(CatalogData{})
	require.NoError(t, err)
	assert.Empty(t, c.Roles())
	assert.Equal(t, DefaultSalaryBand, c.SalaryBand(RoleDataScientist))
	assert.Nil(t, c.RequiredSkills(RoleDataScientist))
}

func TestCatalog_DataRoundTrip(t *testing.T) {
	orig := DefaultCatalog()

	rebuilt, err := NewCatalog(orig.Data())
	require.NoError(t, err)

	assert.Equal(t, orig.Roles(), rebuilt.Roles())
	assert.Equal(t, orig.Synonyms(), rebuilt.Synonyms())
	assert.Equal(t, orig.DegreeCategories(), rebuilt.DegreeCategories())
	for _, r := range orig.Roles() {
		assert.Equal(t, orig.RequiredSkills(r), rebuilt.RequiredSkills(r))
		assert.Equal(t, orig.SalaryBand(r), rebuilt.SalaryBand(r))
	}
}

func TestCatalog_LookupsReturnCopies(t *testing.T) {
	c := DefaultCatalog()

	skills := c.RequiredSkills(RoleDataScientist)
	skills[0] = "Cobol"
	assert.Equal(t, "Python", c.RequiredSkills(RoleDataScientist)[0])

	roles := c.CandidateRoles(DegreeBusiness)
	roles[0] = RoleGeneralist
	assert.Equal(t, RoleProductManager, c.CandidateRoles(DegreeBusiness)[0])
}

func TestCatalog_CandidateRoles_Other(t *testing.T) {
	c := DefaultCatalog()
	assert.Empty(t, c.CandidateRoles(DegreeOther))
	assert.Empty(t, c.CandidateRoles("Alchemy"))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("  data scientist ")
	require.True(t, ok)
	assert.Equal(t, RoleDataScientist, r)

	_, ok = ParseRole("Astronaut")
	assert.False(t, ok)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestCatalogHasRole(t *testing.T) {
	c := DefaultCatalog()
	assert.True(t, c.HasRole(RoleBIAnalyst))
	assert.False(t, c.HasRole(RoleGeneralist))

	empty, err := NewCatalog(CatalogData{Roles: []RoleProfile{{Role: RoleConsultant, Salary: DefaultSalaryBand}}})
	require.NoError(t, err)
	assert.True(t, empty.HasRole(RoleConsultant))
	assert.False(t, empty.HasRole(RoleBIAnalyst))
}

func withoutRole(data CatalogData, role Role) CatalogData {
	out := CatalogData{Synonyms: data.Synonyms}
	for _, rp := range data.Roles {
		if rp.Role != role {
			out.Roles = append(out.Roles, rp)
		}
	}
	for _, dp := range data.Degrees {
		roles := make([]Role, 0, len(dp.Roles))
		for _, r := range dp.Roles {
			if r != role {
				roles = append(roles, r)
			}
		}
		out.Degrees = append(out.Degrees, DegreeProfile{Category: dp.Category, Roles: roles})
	}
	return out
}

func TestCatalogFingerprint(t *testing.T) {
	a := DefaultCatalog()
	assert.Len(t, a.Fingerprint(), 64)
	assert.Equal(t, a.Fingerprint(), DefaultCatalog().Fingerprint())

	rebuilt, err := NewCatalog(a.Data())
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), rebuilt.Fingerprint())

	smaller, err := NewCatalog(withoutRole(DefaultCatalogData(), RoleBlockchainDeveloper))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), smaller.Fingerprint())

	data := DefaultCatalogData()
	data.Roles[0].Salary.Max++
	repriced, err := NewCatalog(data)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), repriced.Fingerprint())

	// surrounding space and case in the raw tables are normalized away
	data = DefaultCatalogData()
	data.Roles[0].RequiredSkills[0] = "  " + data.Roles[0].RequiredSkills[0] + " "
	data.Synonyms[0].Canonical = "JavaScript"
	padded, err := NewCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), padded.Fingerprint())

	assert.NotEmpty(t, NewEngine(nil).Catalog().Fingerprint())
}
