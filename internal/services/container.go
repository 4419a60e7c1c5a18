package services

import "github.com/hello383/Sway/internal/email"

// ServiceContainer holds every service the application wires at startup.
type ServiceContainer struct {
	SignupService  SignupService
	ProfileService ProfileService
	StatsService   StatsService
	JobService     JobService
	GateService    GateService
	EmailService   email.Provider
}
