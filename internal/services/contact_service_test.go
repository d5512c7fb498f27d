package services

import (
	"context"
	"folio/internal/models"
	"folio/internal/store"
	"folio/internal/structures"
	"folio/internal/testutil"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentWithEmail(email string) *testutil.MockContentService {
	return &testutil.MockContentService{Content: &models.Content{PersonalInfo: models.PersonalInfo{Email: email}}}
}

type contactContent struct {
	*testutil.MockContentService
}

func (c contactContent) State() State { return StateReady }

func TestComposeMailto(t *testing.T) {
	link := ComposeMailto("owner@example.com", ContactForm{Name: "Sam Lee", Email: "sam@example.com", Message: "Hi & bye"})

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "owner@example.com", u.Opaque)
	assert.Equal(t, "Portfolio Contact from Sam Lee", u.Query().Get("subject"))
	assert.Equal(t, "Name: Sam Lee\nEmail: sam@example.com\n\nHi & bye", u.Query().Get("body"))
	assert.NotContains(t, link, "+")
}

func TestContactService_SubmitValidates(t *testing.T) {
	svc := NewContactService(&structures.Config{}, testutil.NewUnconfiguredClient(),
		contactContent{contentWithEmail("owner@example.com")}, &testutil.MockLogger{})

	_, err := svc.Submit(context.Background(), ContactForm{Name: "Sam", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Submit(context.Background(), ContactForm{Email: "sam@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContactService_SubmitWithoutStoring(t *testing.T) {
	svc := NewContactService(&structures.Config{}, testutil.NewUnconfiguredClient(),
		contactContent{contentWithEmail("owner@example.com")}, &testutil.MockLogger{})

	res, err := svc.Submit(context.Background(), ContactForm{Name: "Sam", Email: "sam@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.False(t, res.Stored)
	assert.Contains(t, res.MailtoURL, "mailto:owner@example.com?subject=")
}

func TestContactService_StoresMessage(t *testing.T) {
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	conf := &structures.Config{Contact: structures.ContactConfig{StoreMessages: true}}
	svc := NewContactService(conf, client, contactContent{contentWithEmail("owner@example.com")}, &testutil.MockLogger{})
	ctx := context.Background()

	res, err := svc.Submit(ctx, ContactForm{Name: "Sam", Email: "sam@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.True(t, res.Stored)

	docs, ok := client.GetCollection(ctx, models.CollectionMessages)
	require.True(t, ok)
	require.Len(t, docs, 1)
	var msg models.Message
	require.NoError(t, store.Decode(docs[0], &msg))
	assert.False(t, msg.Read)
	assert.Equal(t, "Sam", msg.Name)
	assert.NotEmpty(t, msg.CreatedAt)
}

func TestContactService_NoRecipient(t *testing.T) {
	svc := NewContactService(&structures.Config{}, testutil.NewUnconfiguredClient(),
		contactContent{contentWithEmail("")}, &testutil.MockLogger{})

	_, err := svc.Submit(context.Background(), ContactForm{Name: "Sam", Email: "sam@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}
