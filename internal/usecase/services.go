package usecase

import (
	"vms-gateway/internal/adapters/vms"
	"vms-gateway/internal/domain"
)

// Service wires the per-request data source selection and the session
// registries. Source selection happens in exactly one place: here.
type Service struct {
	Players PlayerRepository
	Viewers ViewerRepository

	upstream *vms.Client
	mock     DataSource

	// Fallback upstream for single-VMS deployments where the dashboard
	// sends only an Authorization header.
	defaultVMSURL string
}

func NewService(players PlayerRepository, viewers ViewerRepository, upstream *vms.Client, mock DataSource, defaultVMSURL string) *Service {
	return &Service{
		Players:       players,
		Viewers:       viewers,
		upstream:      upstream,
		mock:          mock,
		defaultVMSURL: defaultVMSURL,
	}
}

// Source picks the data source for one request: live upstream when the
// credential is complete, canned fixtures otherwise. Handlers never branch
// on credential presence themselves.
func (s *Service) Source(cred domain.Credential) DataSource {
	if cred.ServerURL == "" && cred.Authorization != "" && s.defaultVMSURL != "" {
		cred.ServerURL = s.defaultVMSURL
	}
	if cred.IsZero() {
		return s.mock
	}
	return s.upstream.Bind(cred)
}
