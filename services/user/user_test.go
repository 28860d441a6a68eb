package user

import (
	"sync"
	"testing"

	userRepo "github.com/awalle000/Fadila-sales-system/database/repository/user"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	if v, ok := fields["isActive"]; ok {
		u.IsActive = v.(bool)
	}
	return nil
}

type nopAudit struct{}

func (nopAudit) Record(actor models.Actor, action, details, ip string) {}
func (nopAudit) RecordLogin(user *models.User, ip, userAgent string)   {}
func (nopAudit) Activities(limit int64) ([]models.ActivityLog, error)  { return nil, nil }
func (nopAudit) Logins(limit int64) ([]models.LoginLog, error)         { return nil, nil }

var ceo = models.Actor{ID: "u-ceo", Name: "Fadila", Role: models.RoleCEO}

func newTestUserService(t *testing.T) (*DefaultUserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.byID["u-1"] = &models.User{
		ID: "u-1", Name: "Ama", Email: "ama@example.com",
		PasswordHash: string(hash), Role: models.RoleManager, IsActive: true,
	}
	return &DefaultUserService{Repo: repo, Audit: nopAudit{}}, repo
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService(t)

	result, err := svc.Login("ama@example.com", "correct horse", "1.2.3.4", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "u-1", result.User.ID)
	require.NotEmpty(t, result.Token)

	// Token round-trips through our own validator.
	sub, role, err := utils.ExtractClaimsFromToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", sub)
	assert.Equal(t, models.RoleManager, role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Login("ama@example.com", "wrong", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email yields the same error, never a distinct one.
	_, err = svc.Login("ghost@example.com", "whatever", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, repo := newTestUserService(t)
	repo.byID["u-1"].IsActive = false

	_, err := svc.Login("ama@example.com", "correct horse", "", "")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	for _, creds := range [][2]string{{"", "pw"}, {"a@b.com", ""}} {
		_, err := svc.Login(creds[0], creds[1], "", "")
		var validationErr *ErrValidation
		require.ErrorAs(t, err, &validationErr)
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestUserService(t)

	u, err := svc.Register(RegisterRequest{
		Name: "Kofi", Email: "kofi@example.com", Password: "longenough", Role: models.RoleManager,
	}, ceo, "")
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "longenough", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")))
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestUserService(t)

	tests := []struct {
		name    string
		req     RegisterRequest
		message string
	}{
		{
			"missing fields",
			RegisterRequest{Name: "Kofi"},
			"Name, email and password are required",
		},
		{
			"bad role",
			RegisterRequest{Name: "Kofi", Email: "k@example.com", Password: "longenough", Role: "admin"},
			"Role must be ceo or manager",
		},
		{
			"short password",
			RegisterRequest{Name: "Kofi", Email: "k@example.com", Password: "short", Role: models.RoleManager},
			"Password must be at least 8 characters",
		},
		{
			"duplicate email",
			RegisterRequest{Name: "Kofi", Email: "ama@example.com", Password: "longenough", Role: models.RoleManager},
			"An account with this email already exists",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.req, ceo, "")
			var validationErr *ErrValidation
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.message, validationErr.Message)
		})
	}
}

func TestSetActive(t *testing.T) {
	svc, _ := newTestUserService(t)

	u, err := svc.SetActive("u-1", false)
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	u, err = svc.SetActive("u-1", true)
	require.NoError(t, err)
	assert.True(t, u.IsActive)

	_, err = svc.SetActive("ghost", false)
	assert.ErrorIs(t, err, ErrNotFound)
}
