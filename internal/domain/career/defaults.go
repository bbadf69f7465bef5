package career

// DefaultCatalogData returns the built-in reference tables.
func DefaultCatalogData() CatalogData {
	return CatalogData{
		Roles:    defaultRoleProfiles(),
		Synonyms: defaultSynonyms(),
		Degrees:  defaultDegreeProfiles(),
	}
}

// DefaultCatalog builds the catalog from DefaultCatalogData. The built-in
// tables are covered by tests, so a failure here is a programming error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCatalogData())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultRoleProfiles() []RoleProfile {
	return []RoleProfile{
		{
			Role:           RoleSoftwareEngineer,
			RequiredSkills: []string{"Python", "JavaScript", "Java", "Git", "SQL", "Data Structures", "Algorithms", "REST APIs", "Docker", "Testing", "AWS", "Agile"},
			Salary:         SalaryBand{Min: 70000, Max: 150000, Avg: 110000},
		},
		{
			Role:           RoleDataScientist,
			RequiredSkills: []string{"Python", "Machine Learning", "Statistics", "SQL", "Pandas", "Data Visualization", "TensorFlow", "Scikit-learn", "Deep Learning", "NLP", "Jupyter", "A/B Testing"},
			Salary:         SalaryBand{Min: 80000, Max: 180000, Avg: 130000},
		},
		{
			Role:           RoleMLEngineer,
			RequiredSkills: []string{"Python", "Machine Learning", "TensorFlow", "PyTorch", "Deep Learning", "MLOps", "Scikit-learn", "Docker", "Kubernetes", "SQL", "Statistics", "Spark"},
			Salary:         SalaryBand{Min: 90000, Max: 190000, Avg: 140000},
		},
		{
			Role:           RoleAIEngineer,
			RequiredSkills: []string{"Python", "Machine Learning", "Deep Learning", "NLP", "TensorFlow", "PyTorch", "LLMs", "MLOps"},
			Salary:         SalaryBand{Min: 100000, Max: 200000, Avg: 150000},
		},
		{
			Role:           RoleDevOpsEngineer,
			RequiredSkills: []string{"Docker", "Kubernetes", "CI/CD", "AWS", "Linux", "Terraform", "Git", "Ansible", "Jenkins", "Monitoring", "Bash", "Python"},
			Salary:         SalaryBand{Min: 75000, Max: 160000, Avg: 117500},
		},
		{
			Role:           RoleCloudArchitect,
			RequiredSkills: []string{"AWS", "Azure", "Google Cloud", "Kubernetes", "Terraform", "Networking", "Cloud Security", "Docker", "Microservices", "Linux"},
			Salary:         SalaryBand{Min: 110000, Max: 200000, Avg: 155000},
		},
		{
			Role:           RoleFullStackDeveloper,
			RequiredSkills: []string{"JavaScript", "React", "Node.js", "HTML", "CSS", "SQL", "MongoDB", "PostgreSQL", "Git", "REST APIs", "TypeScript", "Docker"},
			Salary:         SalaryBand{Min: 65000, Max: 140000, Avg: 102500},
		},
		{
			Role:           RoleBackendEngineer,
			RequiredSkills: []string{"Python", "Java", "SQL", "PostgreSQL", "REST APIs", "Django", "Redis", "Docker", "Microservices", "Git", "Kafka", "AWS"},
			Salary:         SalaryBand{Min: 70000, Max: 145000, Avg: 107500},
		},
		{
			Role:           RoleFrontendEngineer,
			RequiredSkills: []string{"JavaScript", "React", "HTML", "CSS", "TypeScript", "Redux", "Webpack", "Responsive Design", "Git", "Testing"},
			Salary:         SalaryBand{Min: 60000, Max: 130000, Avg: 95000},
		},
		{
			Role:           RoleDataAnalyst,
			RequiredSkills: []string{"SQL", "Excel", "Python", "Tableau", "Statistics", "Data Visualization", "Power BI", "Data Cleaning", "Communication"},
			Salary:         SalaryBand{Min: 55000, Max: 110000, Avg: 82500},
		},
		{
			Role:           RoleDataEngineer,
			RequiredSkills: []string{"Python", "SQL", "Spark", "Airflow", "ETL", "Kafka", "AWS", "Data Warehousing", "Hadoop", "Scala", "Docker"},
			Salary:         SalaryBand{Min: 75000, Max: 165000, Avg: 120000},
		},
		{
			Role:           RoleResearchScientist,
			RequiredSkills: []string{"Python", "Research", "Deep Learning", "Statistics", "Mathematics", "Machine Learning", "PyTorch", "Publications", "NLP", "Computer Vision"},
			Salary:         SalaryBand{Min: 85000, Max: 175000, Avg: 130000},
		},
		{
			Role:           RoleBIAnalyst,
			RequiredSkills: []string{"SQL", "Tableau", "Power BI", "Excel", "Data Warehousing", "Data Visualization", "Statistics", "Communication"},
			Salary:         SalaryBand{Min: 60000, Max: 115000, Avg: 87500},
		},
		{
			Role:           RoleProductManager,
			RequiredSkills: []string{"Product Strategy", "Agile", "Stakeholder Management", "User Research", "Analytics", "Roadmapping", "Communication", "UX Design", "Data Analysis", "SQL"},
			Salary:         SalaryBand{Min: 80000, Max: 180000, Avg: 130000},
		},
		{
			Role:           RoleBusinessAnalyst,
			RequiredSkills: []string{"Requirements Gathering", "SQL", "Excel", "Data Analysis", "Stakeholder Management", "Presentations", "Communication", "Process Modeling", "Agile", "Tableau"},
			Salary:         SalaryBand{Min: 60000, Max: 120000, Avg: 90000},
		},
		{
			Role:           RoleConsultant,
			RequiredSkills: []string{"Strategy", "Problem Solving", "Communication", "Excel", "PowerPoint", "Presentations", "Stakeholder Management", "Data Analysis", "Project Management"},
			Salary:         SalaryBand{Min: 70000, Max: 160000, Avg: 115000},
		},
		{
			Role:           RoleMarketingManager,
			RequiredSkills: []string{"Marketing Strategy", "SEO", "Content Marketing", "Social Media", "Analytics", "Communication", "Google Analytics", "Copywriting", "Branding"},
			Salary:         SalaryBand{Min: 65000, Max: 135000, Avg: 100000},
		},
		{
			Role:           RoleProjectManager,
			RequiredSkills: []string{"Project Management", "Agile", "Scrum", "Risk Management", "Stakeholder Management", "Communication", "Budgeting", "Jira", "Leadership"},
			Salary:         SalaryBand{Min: 70000, Max: 145000, Avg: 107500},
		},
		{
			Role:           RoleBlockchainDeveloper,
			RequiredSkills: []string{"Solidity", "Smart Contracts", "Ethereum", "Blockchain", "Web3", "Cryptography", "JavaScript", "Rust", "Node.js", "Git"},
			Salary:         SalaryBand{Min: 85000, Max: 170000, Avg: 127500},
		},
		{
			Role:           RoleCybersecurityAnalyst,
			RequiredSkills: []string{"Network Security", "Penetration Testing", "Linux", "Firewalls", "SIEM", "Python", "Cryptography", "Incident Response", "Risk Assessment", "Compliance"},
			Salary:         SalaryBand{Min: 70000, Max: 140000, Avg: 105000},
		},
	}
}

func defaultSynonyms() []SynonymClass {
	return []SynonymClass{
		{Canonical: "javascript", Variants: []string{"js", "ecmascript", "es6"}},
		{Canonical: "typescript", Variants: []string{"ts"}},
		{Canonical: "python", Variants: []string{"python3", "py"}},
		{Canonical: "machine learning", Variants: []string{"ml", "ai/ml", "machine-learning", "statistical learning"}},
		{Canonical: "deep learning", Variants: []string{"dl", "neural networks", "deep neural networks"}},
		{Canonical: "nlp", Variants: []string{"natural language processing", "text mining"}},
		{Canonical: "artificial intelligence", Variants: []string{"ai"}},
		{Canonical: "llms", Variants: []string{"llm", "large language models", "generative ai", "genai"}},
		{Canonical: "tensorflow", Variants: []string{"tf", "tensor flow", "keras"}},
		{Canonical: "pytorch", Variants: []string{"torch"}},
		{Canonical: "scikit-learn", Variants: []string{"sklearn", "scikit learn"}},
		{Canonical: "kubernetes", Variants: []string{"k8s"}},
		{Canonical: "aws", Variants: []string{"amazon web services"}},
		{Canonical: "google cloud", Variants: []string{"gcp", "google cloud platform"}},
		{Canonical: "azure", Variants: []string{"microsoft azure"}},
		{Canonical: "ci/cd", Variants: []string{"cicd", "continuous integration", "continuous delivery", "continuous deployment"}},
		{Canonical: "react", Variants: []string{"react.js", "reactjs"}},
		{Canonical: "node.js", Variants: []string{"node", "nodejs"}},
		{Canonical: "postgresql", Variants: []string{"postgres", "psql"}},
		{Canonical: "mongodb", Variants: []string{"mongo"}},
		{Canonical: "rest apis", Variants: []string{"rest", "rest api", "restful apis"}},
		{Canonical: "data visualization", Variants: []string{"data viz", "dataviz", "visualization"}},
		{Canonical: "power bi", Variants: []string{"powerbi"}},
		{Canonical: "excel", Variants: []string{"microsoft excel", "ms excel", "spreadsheets"}},
		{Canonical: "statistics", Variants: []string{"statistical analysis", "stats"}},
		{Canonical: "agile", Variants: []string{"agile methodology", "agile methodologies"}},
		{Canonical: "product strategy", Variants: []string{"product vision", "product roadmap"}},
		{Canonical: "user research", Variants: []string{"ux research"}},
		{Canonical: "communication", Variants: []string{"communication skills", "verbal communication"}},
		{Canonical: "seo", Variants: []string{"search engine optimization"}},
		{Canonical: "linux", Variants: []string{"unix", "gnu/linux"}},
		{Canonical: "smart contracts", Variants: []string{"smart contract"}},
		{Canonical: "ethereum", Variants: []string{"eth", "evm"}},
		{Canonical: "web3", Variants: []string{"web3.js", "web 3", "dapps"}},
		{Canonical: "blockchain", Variants: []string{"distributed ledger", "dlt"}},
		{Canonical: "cryptography", Variants: []string{"crypto", "encryption"}},
		{Canonical: "penetration testing", Variants: []string{"pentesting", "pen testing", "ethical hacking"}},
		{Canonical: "network security", Variants: []string{"netsec"}},
	}
}

func defaultDegreeProfiles() []DegreeProfile {
	return []DegreeProfile{
		{
			Category: DegreeComputerScience,
			Roles: []Role{
				RoleSoftwareEngineer, RoleDataScientist, RoleMLEngineer, RoleAIEngineer, RoleDevOpsEngineer,
				RoleFullStackDeveloper, RoleBackendEngineer, RoleFrontendEngineer, RoleBlockchainDeveloper, RoleCybersecurityAnalyst,
			},
		},
		{
			Category: DegreeDataScience,
			Roles: []Role{
				RoleDataScientist, RoleDataAnalyst, RoleDataEngineer, RoleMLEngineer, RoleAIEngineer,
				RoleResearchScientist, RoleBIAnalyst,
			},
		},
		{
			Category: DegreeInformationTechnology,
			Roles: []Role{
				RoleDevOpsEngineer, RoleCloudArchitect, RoleCybersecurityAnalyst, RoleSoftwareEngineer,
				RoleBackendEngineer, RoleFullStackDeveloper,
			},
		},
		{
			Category: DegreeEngineering,
			Roles:    []Role{RoleSoftwareEngineer, RoleDevOpsEngineer, RoleBackendEngineer, RoleCloudArchitect, RoleDataEngineer},
		},
		{
			Category: DegreeMathematics,
			Roles:    []Role{RoleDataScientist, RoleDataAnalyst, RoleResearchScientist, RoleMLEngineer},
		},
		{
			Category: DegreeBusiness,
			Roles:    []Role{RoleProductManager, RoleBusinessAnalyst, RoleConsultant, RoleProjectManager, RoleMarketingManager},
		},
		{
			Category: DegreeMarketing,
			Roles:    []Role{RoleMarketingManager, RoleProductManager, RoleBusinessAnalyst},
		},
		{
			Category: DegreeOther,
		},
	}
}
