package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentag/internal/models"
	"sentag/internal/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) GetByID(id int) (*models.User, error)   { return nil, nil }
func (f *fakeUserRepo) List() ([]*models.User, error)          { return nil, nil }
func (f *fakeUserRepo) Create(u *models.User) error            { return nil }
func (f *fakeUserRepo) UpdateRole(id int, role string) error   { return nil }
func (f *fakeUserRepo) UpdateActive(id int, active bool) error { return nil }

// fakeOTPRepo повторяет семантику таблицы: код находится только пока не
// истек и не погашен.
type fakeOTPRepo struct {
	rows   []*models.OneTimePassword
	nextID int
}

func (f *fakeOTPRepo) Create(otp *models.OneTimePassword) error {
	f.nextID++
	otp.ID = f.nextID
	otp.CreatedAt = time.Now()
	f.rows = append(f.rows, otp)
	return nil
}

func (f *fakeOTPRepo) GetValid(userID int, hash string) (*models.OneTimePassword, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		r := f.rows[i]
		if r.UserID == userID && r.PasswordHash == hash && !r.Used && r.ExpiresAt.After(time.Now()) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeOTPRepo) MarkUsed(id int) error {
	for _, r := range f.rows {
		if r.ID == id {
			r.Used = true
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.User
	created  []*models.Session
}

func (f *fakeSessionRepo) Create(s *models.Session) error {
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSessionRepo) GetUserByToken(token string) (*models.User, error) {
	return f.sessions[token], nil
}

type fakeEmail struct {
	sentTo   []string
	lastCode string
	fail     bool
}

func (f *fakeEmail) SendOTPEmail(email, code string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sentTo = append(f.sentTo, email)
	f.lastCode = code
	return nil
}

func newTestAuth(t *testing.T) (AuthService, *fakeUserRepo, *fakeOTPRepo, *fakeSessionRepo, *fakeEmail) {
	t.Helper()
	users := &fakeUserRepo{byEmail: map[string]*models.User{
		"admin@sentag.ru": {ID: 1, Email: "admin@sentag.ru", Role: models.RoleAdmin, IsActive: true},
		"off@sentag.ru":   {ID: 2, Email: "off@sentag.ru", Role: models.RoleUser, IsActive: false},
	}}
	otps := &fakeOTPRepo{}
	sessions := &fakeSessionRepo{sessions: map[string]*models.User{}}
	email := &fakeEmail{}
	return NewAuthService(users, otps, sessions, email), users, otps, sessions, email
}

func TestRequestOTPUnknownUser(t *testing.T) {
	svc, _, otps, _, email := newTestAuth(t)

	err := svc.RequestOTP("nobody@sentag.ru")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, otps.rows)
	assert.Empty(t, email.sentTo)
}

func TestRequestOTPInactiveUser(t *testing.T) {
	svc, _, _, _, _ := newTestAuth(t)

	err := svc.RequestOTP("off@sentag.ru")

	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestRequestOTPNormalizesEmail(t *testing.T) {
	svc, _, otps, _, email := newTestAuth(t)

	err := svc.RequestOTP("  Admin@Sentag.RU ")

	require.NoError(t, err)
	require.Len(t, otps.rows, 1)
	assert.Equal(t, 1, otps.rows[0].UserID)
	assert.Equal(t, []string{"admin@sentag.ru"}, email.sentTo)
	assert.Len(t, email.lastCode, 6)
}

func TestRequestOTPEmailFailureKeepsCode(t *testing.T) {
	svc, _, otps, _, email := newTestAuth(t)
	email.fail = true

	err := svc.RequestOTP("admin@sentag.ru")

	assert.ErrorIs(t, err, ErrEmailDelivery)
	// код уже закоммичен, сбой доставки его не откатывает
	assert.Len(t, otps.rows, 1)
}

func TestVerifyOTPIssuesSession(t *testing.T) {
	svc, _, otps, sessions, email := newTestAuth(t)
	require.NoError(t, svc.RequestOTP("admin@sentag.ru"))

	token, user, err := svc.VerifyOTP("admin@sentag.ru", email.lastCode, "1.2.3.4", "test-agent")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.NotEmpty(t, token)

	require.Len(t, sessions.created, 1)
	s := sessions.created[0]
	assert.Equal(t, token, s.Token)
	assert.Equal(t, "1.2.3.4", s.IPAddress)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), s.ExpiresAt, time.Minute)

	assert.True(t, otps.rows[0].Used)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _, _, sessions, _ := newTestAuth(t)
	require.NoError(t, svc.RequestOTP("admin@sentag.ru"))

	_, _, err := svc.VerifyOTP("admin@sentag.ru", "000000", "", "")

	assert.ErrorIs(t, err, ErrInvalidOTP)
	assert.Empty(t, sessions.created)
}

func TestVerifyOTPReplayRejected(t *testing.T) {
	svc, _, _, _, email := newTestAuth(t)
	require.NoError(t, svc.RequestOTP("admin@sentag.ru"))

	_, _, err := svc.VerifyOTP("admin@sentag.ru", email.lastCode, "", "")
	require.NoError(t, err)

	_, _, err = svc.VerifyOTP("admin@sentag.ru", email.lastCode, "", "")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	svc, _, otps, _, email := newTestAuth(t)
	require.NoError(t, svc.RequestOTP("admin@sentag.ru"))
	otps.rows[0].ExpiresAt = time.Now().Add(-time.Second)

	_, _, err := svc.VerifyOTP("admin@sentag.ru", email.lastCode, "", "")

	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPTrimsCode(t *testing.T) {
	svc, _, _, _, email := newTestAuth(t)
	require.NoError(t, svc.RequestOTP("admin@sentag.ru"))

	_, user, err := svc.VerifyOTP("admin@sentag.ru", " "+email.lastCode+" ", "", "")

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestVerifySession(t *testing.T) {
	svc, _, _, sessions, _ := newTestAuth(t)
	sessions.sessions["good-token"] = &models.User{ID: 1, Role: models.RoleAdmin, IsActive: true}

	user, err := svc.VerifySession("good-token")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	_, err = svc.VerifySession("stale-token")
	assert.ErrorIs(t, err, ErrSessionInvalid)

	_, err = svc.VerifySession("   ")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestHashOTPStableAndOpaque(t *testing.T) {
	h := utils.HashOTP("123456")
	assert.Len(t, h, 64)
	assert.Equal(t, h, utils.HashOTP("123456"))
	assert.NotEqual(t, h, utils.HashOTP("123457"))
}
