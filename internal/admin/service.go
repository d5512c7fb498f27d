package admin

import (
	"folio/internal/providers"
	"folio/internal/store"
)

type ServiceInterface interface {
	Scaffold(collection string) (*Scaffold, error)
	PersonalInfo() *PersonalInfoEditor
	Inbox() *Inbox
	Files() *Files
}

// Service hands out the admin editors. Scaffolds hold per-session form
// state, so each call returns a fresh one.
type Service struct {
	client  store.ClientInterface
	refresh Refresher
	logger  providers.Logger

	personal *PersonalInfoEditor
	inbox    *Inbox
	files    *Files
}

func NewService(client store.ClientInterface, refresh Refresher, logger providers.Logger) *Service {
	return &Service{
		client:   client,
		refresh:  refresh,
		logger:   logger,
		personal: NewPersonalInfoEditor(client, refresh, logger),
		inbox:    NewInbox(client, logger),
		files:    NewFiles(client, logger),
	}
}

func (s *Service) Scaffold(collection string) (*Scaffold, error) {
	schema, err := SchemaFor(collection)
	if err != nil {
		return nil, err
	}
	return NewScaffold(schema, s.client, s.refresh, s.logger), nil
}

func (s *Service) PersonalInfo() *PersonalInfoEditor { return s.personal }
func (s *Service) Inbox() *Inbox                     { return s.inbox }
func (s *Service) Files() *Files                     { return s.files }
