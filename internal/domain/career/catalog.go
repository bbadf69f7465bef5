package career

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is wrapped by every NewCatalog validation failure.
var ErrInvalidCatalog = errors.New("invalid career catalog")

// SalaryBand is a yearly compensation range in Currency.
type SalaryBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Avg int `json:"avg"`
}

// Currency of every SalaryBand in the catalog.
const Currency = "USD"

// DefaultSalaryBand is used for roles without a band of their own.
var DefaultSalaryBand = SalaryBand{Min: 60000, Max: 120000, Avg: 90000}

// SynonymClass groups surface spellings under one canonical skill name.
type SynonymClass struct {
	Canonical string
	Variants  []string
}

// RoleProfile holds the requirement list (most important first) and salary band of a role.
type RoleProfile struct {
	Role           Role
	RequiredSkills []string
	Salary         SalaryBand
}

// DegreeProfile lists the roles a degree category usually leads to.
type DegreeProfile struct {
	Category DegreeCategory
	Roles    []Role
}

// CatalogData is the raw, unvalidated form of the reference tables.
type CatalogData struct {
	Roles    []RoleProfile
	Synonyms []SynonymClass
	Degrees  []DegreeProfile
}

// Catalog is the validated, read-only set of reference tables. It is safe for
// concurrent use once constructed.
type Catalog struct {
	roles        []Role
	requirements map[Role][]string
	salaries     map[Role]SalaryBand

	synonyms      []SynonymClass
	canonicalKeys map[string]struct{}
	variantIndex  map[string]string

	degrees     []DegreeCategory
	degreeRoles map[DegreeCategory][]Role

	fingerprint string
}

// NewCatalog validates data and builds an immutable Catalog from a deep copy of it.
func NewCatalog(data CatalogData) (*Catalog, error) {
	c := &Catalog{
		roles:         make([]Role, 0, len(data.Roles)),
		requirements:  make(map[Role][]string, len(data.Roles)),
		salaries:      make(map[Role]SalaryBand, len(data.Roles)),
		synonyms:      make([]SynonymClass, 0, len(data.Synonyms)),
		canonicalKeys: make(map[string]struct{}, len(data.Synonyms)),
		variantIndex:  make(map[string]string),
		degrees:       make([]DegreeCategory, 0, len(data.Degrees)),
		degreeRoles:   make(map[DegreeCategory][]Role, len(data.Degrees)),
	}

	for _, rp := range data.Roles {
		if !rp.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidCatalog, rp.Role)
		}
		if _, dup := c.requirements[rp.Role]; dup {
			return nil, fmt.Errorf("%w: duplicate role %q", ErrInvalidCatalog, rp.Role)
		}
		if err := validateBand(rp.Salary); err != nil {
			return nil, fmt.Errorf("%w: role %q: %v", ErrInvalidCatalog, rp.Role, err)
		}

		skills := make([]string, 0, len(rp.RequiredSkills))
		for i, s := range rp.RequiredSkills {
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, fmt.Errorf("%w: role %q: empty skill at position %d", ErrInvalidCatalog, rp.Role, i)
			}
			skills = append(skills, s)
		}

		c.roles = append(c.roles, rp.Role)
		c.requirements[rp.Role] = skills
		c.salaries[rp.Role] = rp.Salary
	}

	for _, sc := range data.Synonyms {
		key := fold(sc.Canonical)
		if key == "" {
			return nil, fmt.Errorf("%w: empty canonical skill", ErrInvalidCatalog)
		}
		if _, dup := c.canonicalKeys[key]; dup {
			return nil, fmt.Errorf("%w: duplicate canonical skill %q", ErrInvalidCatalog, key)
		}
		c.canonicalKeys[key] = struct{}{}

		variants := make([]string, 0, len(sc.Variants))
		for _, v := range sc.Variants {
			v = fold(v)
			if v == "" {
				continue
			}
			variants = append(variants, v)
		}
		c.synonyms = append(c.synonyms, SynonymClass{Canonical: key, Variants: variants})
	}
	// First class wins for variants listed under more than one canonical skill.
	for _, sc := range c.synonyms {
		for _, v := range sc.Variants {
			if _, taken := c.variantIndex[v]; !taken {
				c.variantIndex[v] = sc.Canonical
			}
		}
	}

	for _, dp := range data.Degrees {
		if !dp.Category.Valid() {
			return nil, fmt.Errorf("%w: unknown degree category %q", ErrInvalidCatalog, dp.Category)
		}
		if _, dup := c.degreeRoles[dp.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate degree category %q", ErrInvalidCatalog, dp.Category)
		}
		roles := make([]Role, 0, len(dp.Roles))
		for _, r := range dp.Roles {
			if _, ok := c.requirements[r]; !ok {
				return nil, fmt.Errorf("%w: degree %q references role %q missing from catalog", ErrInvalidCatalog, dp.Category, r)
			}
			roles = append(roles, r)
		}
		c.degrees = append(c.degrees, dp.Category)
		c.degreeRoles[dp.Category] = roles
	}

	fp, err := fingerprint(c.Data())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c.fingerprint = fp

	return c, nil
}

func fingerprint(data CatalogData) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func validateBand(b SalaryBand) error {
	if b.Min <= 0 {
		return errors.New("salary min must be positive")
	}
	if b.Min > b.Max {
		return errors.New("salary min above max")
	}
	if b.Avg < b.Min || b.Avg > b.Max {
		return errors.New("salary avg outside min..max")
	}
	return nil
}

// Fingerprint is a hex sha256 of the normalized tables. Catalogs that can
// produce different results have different fingerprints.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Roles returns the catalog roles in catalog order.
func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	copy(out, c.roles)
	return out
}

// HasRole reports whether role is part of the catalog.
func (c *Catalog) HasRole(role Role) bool {
	_, ok := c.requirements[role]
	return ok
}

// RequiredSkills returns the requirement list for role, most important first,
// or nil when the role is not in the catalog.
func (c *Catalog) RequiredSkills(role Role) []string {
	skills, ok := c.requirements[role]
	if !ok {
		return nil
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// SalaryBand returns the band for role, or DefaultSalaryBand for roles the
// catalog does not price.
func (c *Catalog) SalaryBand(role Role) SalaryBand {
	if b, ok := c.salaries[role]; ok {
		return b
	}
	return DefaultSalaryBand
}

// CandidateRoles returns the roles implied by a degree category. Unknown
// categories and Other yield no candidates.
func (c *Catalog) CandidateRoles(category DegreeCategory) []Role {
	roles := c.degreeRoles[category]
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// DegreeCategories returns the categories present in the catalog, in order.
func (c *Catalog) DegreeCategories() []DegreeCategory {
	out := make([]DegreeCategory, len(c.degrees))
	copy(out, c.degrees)
	return out
}

// Synonyms returns a copy of the folded synonym table in table order.
func (c *Catalog) Synonyms() []SynonymClass {
	out := make([]SynonymClass, 0, len(c.synonyms))
	for _, sc := range c.synonyms {
		variants := make([]string, len(sc.Variants))
		copy(variants, sc.Variants)
		out = append(out, SynonymClass{Canonical: sc.Canonical, Variants: variants})
	}
	return out
}

// Data returns the catalog back in its raw form, e.g. for seeding storage.
func (c *Catalog) Data() CatalogData {
	data := CatalogData{
		Roles:    make([]RoleProfile, 0, len(c.roles)),
		Synonyms: c.Synonyms(),
		Degrees:  make([]DegreeProfile, 0, len(c.degrees)),
	}
	for _, r := range c.roles {
		data.Roles = append(data.Roles, RoleProfile{
			Role:           r,
			RequiredSkills: c.RequiredSkills(r),
			Salary:         c.salaries[r],
		})
	}
	for _, d := range c.degrees {
		data.Degrees = append(data.Degrees, DegreeProfile{Category: d, Roles: c.CandidateRoles(d)})
	}
	return data
}

func (c *Catalog) isCandidate(category DegreeCategory, role Role) bool {
	for _, r := range c.degreeRoles[category] {
		if r == role {
			return true
		}
	}
	return false
}
