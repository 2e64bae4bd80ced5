package packagerepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"perfumery/internal/adapters/out/postgres/packagerepo"
	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/pkg/errs"
	"perfumery/internal/pkg/pgtest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate any) {
	m.Called(aggregate)
}

type StoragePackageRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *packagerepo.GormStoragePackageRepository
	tracker    *MockAggregateTracker
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), &packagerepo.StoragePackageDTO{})
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("storage_packages"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything).Maybe()
	suite.repository = packagerepo.NewGormStoragePackageRepository(suite.pg.DB, suite.tracker)
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TestAdd_IssuesSerial() {
	ctx := context.Background()
	perfumeID := int64(12)
	packedAt := time.Date(2027, time.January, 5, 9, 0, 0, 0, time.UTC)

	p, err := storagepackage.NewStoragePackage("Gift box", "1 Harbour Rd", 3, &perfumeID, packedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Equal("PKG-2027-1", p.Serial())

	stored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("PKG-2027-1", stored.Serial())
	suite.Equal("Gift box", stored.Name())
	suite.Equal(int64(3), stored.WarehouseID())
	suite.Require().NotNil(stored.PerfumeID())
	suite.Equal(perfumeID, *stored.PerfumeID())
	suite.Equal(storagepackage.Packed, stored.Status())
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TestAdd_WithoutPerfume() {
	ctx := context.Background()
	p := suite.addPackage(time.Now())

	stored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.PerfumeID())
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TestAdd_TooLongName_Rejected() {
	_, err := storagepackage.NewStoragePackage(strings.Repeat("n", 151), "addr", 1, nil, time.Now())
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), 5)
	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TestClaimPacked_OldestFirstSkippingSent() {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	first := suite.addPackage(base)
	sent := suite.addPackage(base.Add(time.Minute))
	third := suite.addPackage(base.Add(2 * time.Minute))

	suite.Require().NoError(sent.Send())
	suite.Require().NoError(suite.repository.Update(ctx, sent))

	claimed, err := suite.repository.ClaimPacked(ctx, 3)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 2)
	suite.Equal(first.ID(), claimed[0].ID())
	suite.Equal(third.ID(), claimed[1].ID())
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TestClaimPacked_ConcurrentClaimsAreDisjoint() {
	ctx := context.Background()
	for i := range 4 {
		suite.addPackage(time.Now().Add(time.Duration(i) * time.Second))
	}

	tx1 := suite.pg.DB.Begin()
	defer tx1.Rollback()
	tx2 := suite.pg.DB.Begin()
	defer tx2.Rollback()

	claimed1, err := packagerepo.NewGormStoragePackageRepository(tx1, suite.tracker).ClaimPacked(ctx, 3)
	suite.Require().NoError(err)
	claimed2, err := packagerepo.NewGormStoragePackageRepository(tx2, suite.tracker).ClaimPacked(ctx, 3)
	suite.Require().NoError(err)

	suite.Len(claimed1, 3)
	suite.Require().Len(claimed2, 1)
	for _, p := range claimed1 {
		suite.NotEqual(p.ID(), claimed2[0].ID())
	}
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) TestUpdate_SentIsPersisted() {
	ctx := context.Background()
	p := suite.addPackage(time.Now())

	suite.Require().NoError(p.Send())
	suite.Require().NoError(suite.repository.Update(ctx, p))

	stored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(storagepackage.Sent, stored.Status())
	suite.Require().Error(stored.Send())
}

func (suite *StoragePackageRepositoryIntegrationTestSuite) addPackage(at time.Time) *storagepackage.StoragePackage {
	p, err := storagepackage.NewStoragePackage("Crate", "7 Dock St", 1, nil, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func TestStoragePackageRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoragePackageRepositoryIntegrationTestSuite))
}
