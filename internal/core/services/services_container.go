package services

import (
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	portssvc "github.com/agencypulse/backend/internal/core/ports/services"
	"github.com/agencypulse/backend/internal/platform/config"
)

// NewServiceContainer wires the full service set on top of the
// repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) portssvc.ServiceContainer {
	agencySvc := NewAgencyService(repos.AgencyRepo)
	financeSvc := NewFinanceService(repos.SnapshotRepo, repos.FinanceRepo, repos.RetainerRepo)
	clientSvc := NewClientService(repos.ClientRepo, repos.RetainerRepo, repos.FinanceRepo)
	utilizationSvc := NewUtilizationService(repos.TimeRepo, repos.ClientRepo, cfg.CapacityHours, cfg.UtilizationWindowDays)
	realitySvc := NewRealityService(financeSvc, clientSvc, utilizationSvc)

	return portssvc.ServiceContainer{
		Agency:      agencySvc,
		Finance:     financeSvc,
		Client:      clientSvc,
		Utilization: utilizationSvc,
		Reality:     realitySvc,
	}
}
