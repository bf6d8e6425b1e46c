package identity_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/identity"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	userRepo *MockUserRepository
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository     { return nil }
func (m *MockUnitOfWork) LineRepository() ports.LineRepository       { return nil }
func (m *MockUnitOfWork) TaskRepository() ports.TaskRepository       { return nil }
func (m *MockUnitOfWork) ProductRepository() ports.ProductRepository { return nil }

func (m *MockUnitOfWork) UserRepository() ports.UserRepository {
	return m.userRepo
}

type MockUnitOfWorkFactory struct {
	uow *MockUnitOfWork
}

func (f *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.uow
}

func newService(repo *MockUserRepository) *identity.Service {
	factory := &MockUnitOfWorkFactory{uow: &MockUnitOfWork{userRepo: repo}}
	return identity.NewService(factory, []byte("test-secret"))
}

func registeredUser(t *testing.T, username, password, firstName, role string) *user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	id, err := kernel.NewOperatorID(7)
	require.NoError(t, err)

	account, err := user.RestoreUser(id, username, string(hash), firstName, "García", "3001234567", role)
	require.NoError(t, err)

	return account
}

func TestRegister_HashesPasswordBeforePersisting(t *testing.T) {
	repo := &MockUserRepository{}
	repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once()
	service := newService(repo)

	account, err := service.Register(context.Background(), identity.RegisterInput{
		Username:  "ana",
		Password:  "correcthorse",
		FirstName: "Ana",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "correcthorse", account.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash()), []byte("correcthorse")))
	assert.Equal(t, user.RoleOperator, account.Role())
	repo.AssertExpectations(t)
}

func TestRegister_ShortPassword_Rejected(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)

	_, err := service.Register(context.Background(), identity.RegisterInput{
		Username: "ana",
		Password: "short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrPasswordTooShort)
	repo.AssertNotCalled(t, "Add")
}

func TestRegister_EmptyPassword_Rejected(t *testing.T) {
	repo := &MockUserRepository{}
	service := newService(repo)

	_, err := service.Register(context.Background(), identity.RegisterInput{
		Username: "ana",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Add")
}

func TestRegister_TakenUsername_SurfacesConflict(t *testing.T) {
	repo := &MockUserRepository{}
	conflict := errs.NewStateConflictError("username", "taken", "available")
	repo.On("Add", mock.Anything, mock.Anything).Return(conflict).Once()
	service := newService(repo)

	_, err := service.Register(context.Background(), identity.RegisterInput{
		Username: "ana",
		Password: "correcthorse",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	repo.AssertExpectations(t)
}

func TestLogin_ValidCredentials_IssuesVerifiableToken(t *testing.T) {
	repo := &MockUserRepository{}
	account := registeredUser(t, "ana", "correcthorse", "Ana", user.RoleManager)
	repo.On("GetByUsername", mock.Anything, "ana").Return(account, nil).Once()
	service := newService(repo)

	token, loggedIn, err := service.Login(context.Background(), "ana", "correcthorse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, account, loggedIn)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "Ana", claims.DisplayName)
	assert.Equal(t, user.RoleManager, claims.Role)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword_ReturnsInvalidCredentials(t *testing.T) {
	repo := &MockUserRepository{}
	account := registeredUser(t, "ana", "correcthorse", "Ana", "")
	repo.On("GetByUsername", mock.Anything, "ana").Return(account, nil).Once()
	service := newService(repo)

	token, loggedIn, err := service.Login(context.Background(), "ana", "wrong-password")

	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, loggedIn)
}

func TestLogin_UnknownUsername_ReturnsInvalidCredentials(t *testing.T) {
	repo := &MockUserRepository{}
	repo.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, errs.NewObjectNotFoundError("user", "ghost")).Once()
	service := newService(repo)

	_, _, err := service.Login(context.Background(), "ghost", "whatever-pass")

	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestVerifyToken_TamperedToken_Rejected(t *testing.T) {
	repo := &MockUserRepository{}
	account := registeredUser(t, "ana", "correcthorse", "Ana", "")
	repo.On("GetByUsername", mock.Anything, "ana").Return(account, nil).Once()
	service := newService(repo)

	token, _, err := service.Login(context.Background(), "ana", "correcthorse")
	require.NoError(t, err)

	_, err = service.VerifyToken(token + "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestVerifyToken_DifferentSecret_Rejected(t *testing.T) {
	repo := &MockUserRepository{}
	account := registeredUser(t, "ana", "correcthorse", "Ana", "")
	repo.On("GetByUsername", mock.Anything, "ana").Return(account, nil).Once()
	issuer := newService(repo)

	token, _, err := issuer.Login(context.Background(), "ana", "correcthorse")
	require.NoError(t, err)

	verifier := identity.NewService(&MockUnitOfWorkFactory{uow: &MockUnitOfWork{}}, []byte("other-secret"))
	_, err = verifier.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestVerifyToken_Garbage_Rejected(t *testing.T) {
	service := newService(&MockUserRepository{})

	_, err := service.VerifyToken("not-a-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}
