package career

// Role is a career outcome the engine can predict.
type Role string

const (
	RoleSoftwareEngineer     Role = "Software Engineer"
	RoleDataScientist        Role = "Data Scientist"
	RoleMLEngineer           Role = "ML Engineer"
	RoleAIEngineer           Role = "AI Engineer"
	RoleDevOpsEngineer       Role = "DevOps Engineer"
	RoleCloudArchitect       Role = "Cloud Architect"
	RoleFullStackDeveloper   Role = "Full Stack Developer"
	RoleBackendEngineer      Role = "Backend Engineer"
	RoleFrontendEngineer     Role = "Frontend Engineer"
	RoleDataAnalyst          Role = "Data Analyst"
	RoleDataEngineer         Role = "Data Engineer"
	RoleResearchScientist    Role = "Research Scientist"
	RoleBIAnalyst            Role = "BI Analyst"
	RoleProductManager       Role = "Product Manager"
	RoleBusinessAnalyst      Role = "Business Analyst"
	RoleConsultant           Role = "Consultant"
	RoleMarketingManager     Role = "Marketing Manager"
	RoleProjectManager       Role = "Project Manager"
	RoleBlockchainDeveloper  Role = "Blockchain Developer"
	RoleCybersecurityAnalyst Role = "Cybersecurity Analyst"

	// RoleGeneralist is returned when the catalog has no roles at all.
	RoleGeneralist Role = "Generalist"
)

var allRoles = []Role{
	RoleSoftwareEngineer,
	RoleDataScientist,
	RoleMLEngineer,
	RoleAIEngineer,
	RoleDevOpsEngineer,
	RoleCloudArchitect,
	RoleFullStackDeveloper,
	RoleBackendEngineer,
	RoleFrontendEngineer,
	RoleDataAnalyst,
	RoleDataEngineer,
	RoleResearchScientist,
	RoleBIAnalyst,
	RoleProductManager,
	RoleBusinessAnalyst,
	RoleConsultant,
	RoleMarketingManager,
	RoleProjectManager,
	RoleBlockchainDeveloper,
	RoleCybersecurityAnalyst,
}

// Roles returns every predictable role in declaration order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	key := fold(s)
	if key == "" {
		return "", false
	}
	for _, r := range allRoles {
		if fold(string(r)) == key {
			return r, true
		}
	}
	return "", false
}

func (r Role) Valid() bool {
	for _, it := range allRoles {
		if it == r {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// DegreeCategory is a bucket of related academic degrees.
type DegreeCategory string

const (
	DegreeComputerScience       DegreeCategory = "Computer Science"
	DegreeDataScience           DegreeCategory = "Data Science"
	DegreeInformationTechnology DegreeCategory = "Information Technology"
	DegreeEngineering           DegreeCategory = "Engineering"
	DegreeMathematics           DegreeCategory = "Mathematics"
	DegreeBusiness              DegreeCategory = "Business"
	DegreeMarketing             DegreeCategory = "Marketing"
	DegreeOther                 DegreeCategory = "Other"
)

var allDegreeCategories = []DegreeCategory{
	DegreeComputerScience,
	DegreeDataScience,
	DegreeInformationTechnology,
	DegreeEngineering,
	DegreeMathematics,
	DegreeBusiness,
	DegreeMarketing,
	DegreeOther,
}

// DegreeCategories returns every category, Other last.
func DegreeCategories() []DegreeCategory {
	out := make([]DegreeCategory, len(allDegreeCategories))
	copy(out, allDegreeCategories)
	return out
}

func (d DegreeCategory) Valid() bool {
	for _, it := range allDegreeCategories {
		if it == d {
			return true
		}
	}
	return false
}

func (d DegreeCategory) String() string { return string(d) }
