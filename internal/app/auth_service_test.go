package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
	"github.com/suraj-17-jadhav/internship-program/internal/pkg/jwtutil"
)

type mockUserStore struct {
	createFn        func(user *model.User) error
	getByIDFn       func(id uint) (*model.User, error)
	getByUsernameFn func(username string) (*model.User, error)
	getByEmailFn    func(email string) (*model.User, error)
}

func (m *mockUserStore) Create(user *model.User) error {
	if m.createFn != nil {
		return m.createFn(user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserStore) GetByID(id uint) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByUsername(username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(username)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, nil
}

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, "test-secret", time.Hour, bcrypt.MinCost)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserStore{})

	cases := []RegisterInput{
		{Username: "", Email: "a@x.com", Password: "pw1"},
		{Username: "alice", Email: "", Password: "pw1"},
		{Username: "alice", Email: "a@x.com", Password: ""},
		{},
	}
	for _, input := range cases {
		_, err := svc.Register(input)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	var created *model.User
	store := &mockUserStore{
		createFn: func(user *model.User) error {
			user.ID = 7
			created = user
			return nil
		},
	}
	svc := newTestAuthService(store)

	user, err := svc.Register(RegisterInput{Username: "alice", Email: "A@X.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email, "email is stored lowercased")
	assert.NotEqual(t, "pw1", user.PasswordHash, "plaintext must never be persisted")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	store := &mockUserStore{
		getByUsernameFn: func(username string) (*model.User, error) {
			return &model.User{ID: 1, Username: username}, nil
		},
	}
	svc := newTestAuthService(store)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := &mockUserStore{
		getByEmailFn: func(email string) (*model.User, error) {
			return &model.User{ID: 1, Email: email}, nil
		},
	}
	svc := newTestAuthService(store)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_Register_StoreError(t *testing.T) {
	storeErr := errors.New("connection lost")
	store := &mockUserStore{
		getByUsernameFn: func(string) (*model.User, error) { return nil, storeErr },
	}
	svc := newTestAuthService(store)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, storeErr)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserStore{})

	_, err := svc.Login(LoginInput{Email: "", Password: "pw1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserStore{})

	_, err := svc.Login(LoginInput{Email: "nobody@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &mockUserStore{
		getByEmailFn: func(email string) (*model.User, error) {
			return &model.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(store)

	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &mockUserStore{
		getByEmailFn: func(email string) (*model.User, error) {
			return &model.User{ID: 42, Username: "alice", Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(store)

	result, err := svc.Login(LoginInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, uint(42), result.User.ID)

	claims, err := jwtutil.ParseToken("test-secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	users := map[string]*model.User{}
	store := &mockUserStore{
		createFn: func(user *model.User) error {
			user.ID = uint(len(users) + 1)
			users[user.Email] = user
			return nil
		},
		getByEmailFn: func(email string) (*model.User, error) {
			return users[email], nil
		},
	}
	svc := newTestAuthService(store)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	result, err := svc.Login(LoginInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_GetUserByID_ZeroID(t *testing.T) {
	svc := newTestAuthService(&mockUserStore{
		getByIDFn: func(uint) (*model.User, error) {
			t.Fatal("store must not be queried for id 0")
			return nil, nil
		},
	})

	user, err := svc.GetUserByID(0)
	require.NoError(t, err)
	assert.Nil(t, user)
}
