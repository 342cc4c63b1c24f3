package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentag/internal/models"
)

type recordingUserRepo struct {
	fakeUserRepo
	created     []*models.User
	roleUpdates map[int]string
	activeFlags map[int]bool
}

func (r *recordingUserRepo) Create(u *models.User) error {
	u.ID = len(r.created) + 1
	r.created = append(r.created, u)
	return nil
}

func (r *recordingUserRepo) UpdateRole(id int, role string) error {
	if r.roleUpdates == nil {
		r.roleUpdates = map[int]string{}
	}
	r.roleUpdates[id] = role
	return nil
}

func (r *recordingUserRepo) UpdateActive(id int, active bool) error {
	if r.activeFlags == nil {
		r.activeFlags = map[int]bool{}
	}
	r.activeFlags[id] = active
	return nil
}

func TestCreateUserDefaultsAndNormalization(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.CreateUser("  Manager@Sentag.RU ", "", 1)

	require.NoError(t, err)
	assert.Equal(t, "manager@sentag.ru", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	require.NotNil(t, user.CreatedBy)
	assert.Equal(t, 1, *user.CreatedBy)
}

func TestCreateUserEmptyEmail(t *testing.T) {
	svc := NewUserService(&recordingUserRepo{})

	_, err := svc.CreateUser("   ", models.RoleAdmin, 1)

	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestUpdateUserPartial(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := NewUserService(repo)

	active := false
	require.NoError(t, svc.UpdateUser(&models.UpdateUserRequest{UserID: 3, IsActive: &active}))

	assert.Empty(t, repo.roleUpdates)
	assert.Equal(t, map[int]bool{3: false}, repo.activeFlags)

	role := models.RoleAdmin
	require.NoError(t, svc.UpdateUser(&models.UpdateUserRequest{UserID: 3, Role: &role}))
	assert.Equal(t, map[int]string{3: "admin"}, repo.roleUpdates)
}
