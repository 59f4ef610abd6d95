package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/portfolio/internal/models"
	appErr "github.com/folio-labs/portfolio/pkg/errors"
)

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, obj *models.ContactMessage) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockContactRepository) GetByID(ctx context.Context, id any, dest *models.ContactMessage) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockContactRepository) Insert(ctx context.Context, name, email, message string) (uuid.UUID, error) {
	args := m.Called(ctx, name, email, message)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendContactEmail(ctx context.Context, name, email, message string) error {
	args := m.Called(ctx, name, email, message)
	return args.Error(0)
}

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, obj *models.Project) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id any, dest *models.Project) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestContactSubmitStoresAndNotifies(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	id := uuid.New()
	repo.On("Insert", mock.Anything, "Ana", "ana@x.com", "Hi").Return(id, nil).Once()
	notifier.On("SendContactEmail", mock.Anything, "Ana", "ana@x.com", "Hi").Return(nil).Once()

	svc := NewContactService(repo, notifier)
	res, err := svc.Submit(context.Background(), ContactInput{Name: "Ana", Email: "ana@x.com", Message: "Hi"})

	require.NoError(t, err)
	assert.Equal(t, ContactResult{MessageID: id, Stored: true, Notified: true}, res)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestContactSubmitMailFailureFailsSubmission(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	repo.On("Insert", mock.Anything, "Ana", "ana@x.com", "Hi").Return(uuid.New(), nil).Once()
	notifier.On("SendContactEmail", mock.Anything, "Ana", "ana@x.com", "Hi").
		Return(appErr.Mail(errors.New("535 auth failed"), "send contact email failed")).Once()

	svc := NewContactService(repo, notifier)
	res, err := svc.Submit(context.Background(), ContactInput{Name: "Ana", Email: "ana@x.com", Message: "Hi"})

	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeMail))
	assert.True(t, res.Stored)
	assert.False(t, res.Notified)
}

func TestContactSubmitStorageFailureStillNotifies(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	repo.On("Insert", mock.Anything, "Ana", "ana@x.com", "Hi").
		Return(uuid.Nil, appErr.Storage(errors.New("connection refused"), "storage unavailable")).Once()
	notifier.On("SendContactEmail", mock.Anything, "Ana", "ana@x.com", "Hi").Return(nil).Once()

	svc := NewContactService(repo, notifier)
	res, err := svc.Submit(context.Background(), ContactInput{Name: "Ana", Email: "ana@x.com", Message: "Hi"})

	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeStorage))
	assert.False(t, res.Stored)
	assert.True(t, res.Notified)
	notifier.AssertExpectations(t)
}

func TestContactSubmitBothFail(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	repo.On("Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(uuid.Nil, appErr.Storage(errors.New("down"), "storage unavailable")).Once()
	notifier.On("SendContactEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(appErr.Mail(errors.New("down"), "send contact email failed")).Once()

	_, err := NewContactService(repo, notifier).Submit(context.Background(), ContactInput{Name: "Ana", Email: "ana@x.com", Message: "Hi"})

	assert.True(t, appErr.IsCode(err, appErr.CodeStorage))
	assert.True(t, appErr.IsCode(err, appErr.CodeMail))
}

func TestListProjects(t *testing.T) {
	repo := &mockProjectRepository{}
	now := time.Now().UTC()
	projects := []models.Project{
		{Title: "Indie Horror Experience", Category: "Indie", CreatedAt: now},
		{Title: "Epic Adventure Quest", Category: "Unity", CreatedAt: now.Add(-time.Hour)},
	}
	repo.On("List", mock.Anything).Return(projects, nil).Once()
	repo.On("ListFeatured", mock.Anything).Return(nil, appErr.Storage(errors.New("down"), "list featured projects failed")).Once()

	svc := NewProjectService(repo)

	out, err := svc.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, projects, out)

	_, err = svc.ListFeaturedProjects(context.Background())
	assert.True(t, appErr.IsCode(err, appErr.CodeStorage))
}
