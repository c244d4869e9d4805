package user

import (
	"testing"

	"doctorchamber/models"
	"doctorchamber/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	users    map[string]*models.User
	promoted []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(u *models.User) (string, error) {
	f.users[u.Email] = u
	return "uid1", nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) PromoteToAdmin(id string) error {
	f.promoted = append(f.promoted, id)
	return nil
}

func TestIssueTokenForKnownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["a@x.com"] = &models.User{Email: "a@x.com"}
	svc := &DefaultUserService{Repo: repo}

	token, err := svc.IssueToken("a@x.com")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := utils.ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestIssueTokenUnknownEmailForbidden(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	token, err := svc.IssueToken("nobody@x.com")

	assert.ErrorIs(t, err, ErrUnknownEmail)
	assert.Empty(t, token)
}

func TestIsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin@x.com"] = &models.User{Email: "admin@x.com", Role: models.RoleAdmin}
	repo.users["user@x.com"] = &models.User{Email: "user@x.com"}
	svc := &DefaultUserService{Repo: repo}

	isAdmin, err := svc.IsAdmin("admin@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin("user@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	// An absent record is simply not an admin, not an error.
	isAdmin, err = svc.IsAdmin("ghost@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestRegisterRequiresEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(models.User{Name: "No Email"})
	assert.Error(t, err)
}
