package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"gelsin/internal/adapters/out/postgres/accountrepo"
	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// AccountRepositoryIntegrationTestSuite provides integration tests for
// GormAccountRepository using PostgreSQL containers, with a focus on the
// email uniqueness guarantee backing registration.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
	tracker    *MockAggregateTracker
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&accountrepo.UserDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db, suite.tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_NewUser_AssignsIdentifier() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	persisted, err := suite.repository.Add(ctx, suite.newUser("ayse@example.com"))
	suite.Require().NoError(err)

	suite.Positive(persisted.ID())
	suite.Equal("Ayse Yilmaz", persisted.FullName())
	suite.Equal("ayse@example.com", persisted.Email())
	suite.Equal(account.RoleCustomer, persisted.Role())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_TakenEmail_ReturnsInvalidError() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	_, err := suite.repository.Add(ctx, suite.newUser("ayse@example.com"))
	suite.Require().NoError(err)

	duplicate, err := suite.repository.Add(ctx, suite.newUser("ayse@example.com"))
	suite.Nil(duplicate)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Contains(err.Error(), "email is already registered")

	// The failed insert leaves exactly one row behind
	var count int64
	suite.Require().NoError(suite.db.Model(&accountrepo.UserDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_ExistingUser_RoundTrips() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()
	persisted, err := suite.repository.Add(ctx, suite.newUser("ayse@example.com"))
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)

	suite.Equal(persisted.ID(), retrieved.ID())
	suite.Equal("Ayse Yilmaz", retrieved.FullName())
	suite.Equal("ayse@example.com", retrieved.Email())
	suite.True(account.CheckPassword("hunter22", retrieved.PasswordHash()))
	suite.Equal(account.RoleCustomer, retrieved.Role())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_NonExistentUser_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 99999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByEmail_ExistingUser_ReturnsUser() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()
	persisted, err := suite.repository.Add(ctx, suite.newUser("ayse@example.com"))
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByEmail(ctx, "ayse@example.com")
	suite.Require().NoError(err)
	suite.Equal(persisted.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEmail(ctx, "nobody@example.com")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByEmail_EmptyEmail_ReturnsError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEmail(ctx, "")

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)

	suite.tracker.AssertExpectations(suite.T())
}

// newUser creates a valid customer user for testing purposes.
func (suite *AccountRepositoryIntegrationTestSuite) newUser(email string) *account.User {
	passwordHash, err := account.HashPassword("hunter22")
	suite.Require().NoError(err)

	user, err := account.NewUser("Ayse Yilmaz", email, passwordHash, account.RoleCustomer)
	suite.Require().NoError(err)
	return user
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
