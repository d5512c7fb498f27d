package admin

import (
	"context"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/store"
	"slices"
)

type InboxView struct {
	Messages []models.Message `json:"messages"`
	Unread   int              `json:"unread"`
}

// Inbox lists contact messages newest first.
type Inbox struct {
	client store.ClientInterface
	logger providers.Logger
}

func NewInbox(client store.ClientInterface, logger providers.Logger) *Inbox {
	return &Inbox{client: client, logger: logger}
}

func (i *Inbox) List(ctx context.Context) InboxView {
	view := InboxView{Messages: []models.Message{}}

	docs, ok := i.client.GetCollection(ctx, models.CollectionMessages)
	if !ok {
		return view
	}
	messages, err := store.DecodeAll[models.Message](docs)
	if err != nil {
		i.logger.Warnf(providers.TypeAdmin, "Messages unreadable: %s", err)
		return view
	}
	models.SortByOrder(messages)
	slices.Reverse(messages)

	view.Messages = messages
	view.Unread = UnreadCount(messages)
	return view
}

func (i *Inbox) MarkRead(ctx context.Context, id string) error {
	return i.client.UpdateDocument(ctx, models.CollectionMessages, id, map[string]any{"read": true})
}

func (i *Inbox) Delete(ctx context.Context, id string) error {
	return i.client.DeleteDocument(ctx, models.CollectionMessages, id)
}

func UnreadCount(messages []models.Message) int {
	n := 0
	for _, m := range messages {
		if !m.Read {
			n++
		}
	}
	return n
}
