package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist_backend/internal/models"
	"legalassist_backend/internal/pkg/email"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/pkg/apperrors"
)

type stubOrgRepo struct {
	orgs    map[uuid.UUID]*models.Organization
	members [][2]uuid.UUID // org, user
}

func newStubOrgRepo() *stubOrgRepo {
	return &stubOrgRepo{orgs: map[uuid.UUID]*models.Organization{}}
}

func (s *stubOrgRepo) Create(_ context.Context, org *models.Organization) error {
	org.ID = uuid.New()
	s.orgs[org.ID] = org
	return nil
}

func (s *stubOrgRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Organization, error) {
	org, ok := s.orgs[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return org, nil
}

func (s *stubOrgRepo) AddMember(_ context.Context, orgID, userID uuid.UUID) error {
	s.members = append(s.members, [2]uuid.UUID{orgID, userID})
	return nil
}

type stubUserRepo struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	s := &stubUserRepo{byID: map[uuid.UUID]*models.User{}, byEmail: map[string]*models.User{}}
	for _, u := range users {
		s.byID[u.ID] = u
		s.byEmail[u.Email] = u
	}
	return s
}

func (s *stubUserRepo) Create(_ context.Context, u *models.User) error {
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, addr string) (*models.User, error) {
	u, ok := s.byEmail[addr]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUserRepo) Update(context.Context, *models.User) error           { return nil }
func (s *stubUserRepo) UpdatePhone(context.Context, uuid.UUID, string) error { return nil }
func (s *stubUserRepo) UpdateRole(context.Context, uuid.UUID, string) error  { return nil }
func (s *stubUserRepo) List(context.Context, int, int) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) CountByRole(context.Context, string) (int64, error) { return 0, nil }

func orgMember(emailAddr, first, last string) *models.User {
	u := &models.User{Email: emailAddr, FirstName: first, LastName: last}
	u.ID = uuid.New()
	return u
}

func TestInviteSendsEmailToInvitee(t *testing.T) {
	t.Parallel()

	owner := orgMember("owner@firm.co.ke", "Grace", "Njeri")
	invitee := orgMember("new@firm.co.ke", "Brian", "Otieno")

	orgs := newStubOrgRepo()
	mail := &email.MockSender{}
	svc := NewOrganizationService(orgs, newStubUserRepo(owner, invitee), mail)

	org := &models.Organization{Name: "Njeri & Co Advocates", OwnerID: owner.ID}
	org.ID = uuid.New()
	orgs.orgs[org.ID] = org

	err := svc.Invite(context.Background(), owner.ID, org.ID, invitee.Email)
	require.NoError(t, err)

	require.Len(t, mail.Sent, 1)
	msg := mail.Sent[0]
	assert.Equal(t, invitee.Email, msg.To)
	assert.Contains(t, msg.Subject, "Njeri & Co Advocates")
	assert.Contains(t, msg.TextBody, owner.FullName())

	require.Len(t, orgs.members, 1)
	assert.Equal(t, invitee.ID, orgs.members[0][1])
}

func TestInviteRejectsNonOwner(t *testing.T) {
	t.Parallel()

	owner := orgMember("owner@firm.co.ke", "Grace", "Njeri")
	outsider := orgMember("outsider@firm.co.ke", "Sam", "Kiptoo")

	orgs := newStubOrgRepo()
	mail := &email.MockSender{}
	svc := NewOrganizationService(orgs, newStubUserRepo(owner, outsider), mail)

	org := &models.Organization{Name: "Njeri & Co Advocates", OwnerID: owner.ID}
	org.ID = uuid.New()
	orgs.orgs[org.ID] = org

	err := svc.Invite(context.Background(), outsider.ID, org.ID, owner.Email)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	assert.Empty(t, mail.Sent, "no email goes out on a rejected invite")
	assert.Empty(t, orgs.members)
}
