package services

import (
	"github.com/kipubooks/kipu-backend/internal/core/ports"
	portsrepo "github.com/kipubooks/kipu-backend/internal/core/ports/repositories"
	portssvc "github.com/kipubooks/kipu-backend/internal/core/ports/services"
	"github.com/kipubooks/kipu-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extractor ports.ReceiptExtractor, files ports.FileStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, files)
	container.Receipt = NewReceiptService(repos.ReceiptRepo, extractor, files, cfg.ExtractionTimeout)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
