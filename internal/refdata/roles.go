package refdata

import "sort"

// RoleSearchLimit caps role suggestions while typing.
const RoleSearchLimit = 15

// RolesByCategory is the canonical role taxonomy shown in the signup wizard.
var RolesByCategory = map[string][]string{
	"Engineering & Development": {
		"Software Engineer",
		"Frontend Developer",
		"Backend Developer",
		"Full Stack Developer",
		"Mobile Developer",
		"iOS Developer",
		"Android Developer",
		"DevOps Engineer",
		"Site Reliability Engineer (SRE)",
		"Cloud Engineer",
		"Infrastructure Engineer",
		"Security Engineer",
		"QA Engineer",
		"Test Engineer",
		"Automation Engineer",
		"Embedded Systems Engineer",
		"Game Developer",
		"Machine Learning Engineer",
		"AI Engineer",
	},
	"Data & Analytics": {
		"Data Scientist",
		"Data Analyst",
		"Data Engineer",
		"Business Intelligence Analyst",
		"Analytics Engineer",
		"Data Architect",
		"Business Analyst",
		"Financial Analyst",
		"Market Research Analyst",
	},
	"Design & Creative": {
		"Product Designer",
		"UI/UX Designer",
		"UX Designer",
		"UI Designer",
		"Graphic Designer",
		"Visual Designer",
		"Motion Designer",
		"Brand Designer",
		"Web Designer",
		"Content Creator",
		"Creative Director",
		"Art Director",
	},
	"Product & Management": {
		"Product Manager",
		"Product Owner",
		"Technical Product Manager",
		"Program Manager",
		"Project Manager",
		"Scrum Master",
		"Operations Manager",
		"Chief of Staff",
	},
	"Marketing & Sales": {
		"Marketing Manager",
		"Digital Marketing Specialist",
		"Content Marketing Manager",
		"SEO Specialist",
		"Growth Marketer",
		"Social Media Manager",
		"Sales Manager",
		"Account Executive",
		"Sales Development Representative",
		"Customer Success Manager",
	},
	"People & Support": {
		"HR Manager",
		"Recruiter",
		"Talent Acquisition Specialist",
		"Customer Support Specialist",
		"Technical Writer",
		"Executive Assistant",
	},
}

var allRoles []string

func init() {
	seen := make(map[string]bool)
	for _, roles := range RolesByCategory {
		for _, role := range roles {
			if !seen[role] {
				seen[role] = true
				allRoles = append(allRoles, role)
			}
		}
	}
	sort.Strings(allRoles)
}

// AllRoles returns every canonical role, sorted and deduplicated.
func AllRoles() []string {
	return allRoles
}

// SearchRoles returns canonical roles matching the query, capped at
// RoleSearchLimit. An empty query returns the head of the full list.
func SearchRoles(query string) []string {
	if query == "" {
		return substringSearch(allRoles, query, DefaultSearchLimit)
	}
	return substringSearch(allRoles, query, RoleSearchLimit)
}

// CategoryForRole returns the taxonomy category a canonical role belongs to.
func CategoryForRole(role string) (string, bool) {
	for category, roles := range RolesByCategory {
		for _, r := range roles {
			if r == role {
				return category, true
			}
		}
	}
	return "", false
}
