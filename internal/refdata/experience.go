package refdata

// ExperienceLevels is the seniority ladder, junior first.
var ExperienceLevels = []string{
	"Entry level",
	"Junior",
	"Mid-level",
	"Senior",
	"Lead",
	"Principal",
	"Staff",
	"Manager",
	"Senior Manager",
	"Director",
	"Senior Director",
	"VP",
	"Senior VP",
	"C-Level",
	"Executive",
}

// WorkHours lists the schedule options.
var WorkHours = []string{
	"9-5 US timezone",
	"9-5 European timezone",
	"Flexible",
	"Part-time",
}

// EmploymentStatuses lists the current-situation options.
var EmploymentStatuses = []string{
	"Currently working remotely",
	"Currently employed, seeking remote role",
	"Unemployed, seeking remote role",
	"Career changer interested in remote work",
	"Returning to workforce",
	"Recent graduate",
}

// RemoteRetreats lists the retreat-preference options.
var RemoteRetreats = []string{
	"Love them",
	"Sometimes",
	"Maybe",
	"Not for me",
}

// WorkEnvironments lists the working-setup options.
var WorkEnvironments = []string{
	"Local coworking space",
	"Dedicated home office space that you close the door on",
	"Other",
}

// SearchExperience returns experience levels matching the query. An empty
// query returns the whole ladder in order.
func SearchExperience(query string) []string {
	if query == "" {
		return ExperienceLevels
	}
	return substringSearch(ExperienceLevels, query, DefaultSearchLimit)
}

// SearchWorkHours returns schedule options matching the query.
func SearchWorkHours(query string) []string {
	if query == "" {
		return WorkHours
	}
	return substringSearch(WorkHours, query, DefaultSearchLimit)
}
