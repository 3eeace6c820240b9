package reportrepo_test

import (
	"context"
	"testing"
	"time"

	"depot/internal/adapters/out/postgres/reportrepo"
	"depot/internal/core/domain/model/report"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ReportRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reportrepo.GormReportRepository
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(reportrepo.Migrate(db))
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE report_entries").Error)
	suite.repository = reportrepo.NewGormReportRepository(suite.db)
}

func (suite *ReportRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAppend_StoresLine() {
	ctx := context.Background()
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
	entry := report.NewEntry(at, "Processed Parcel ID X1 for Alice | Fee: $1.00 (Action: Processed via Worker)")

	suite.Require().NoError(suite.repository.Append(ctx, entry))

	var dto reportrepo.ReportEntryDTO
	suite.Require().NoError(suite.db.First(&dto).Error)
	suite.Equal(entry.Line(), dto.Line)
	suite.Equal(entry.Text(), dto.Text)
	suite.True(at.Equal(dto.WrittenAt))
}

func (suite *ReportRepositoryIntegrationTestSuite) TestRecent_ReturnsLatestOldestFirst() {
	ctx := context.Background()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	for i, text := range []string{"first", "second", "third"} {
		entry := report.NewEntry(base.Add(time.Duration(i)*time.Minute), text)
		suite.Require().NoError(suite.repository.Append(ctx, entry))
	}

	entries, err := suite.repository.Recent(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("second", entries[0].Entry.Text())
	suite.Equal("third", entries[1].Entry.Text())
	suite.Require().NoError(entries[0].ID.Validate())
	suite.Equal("[2025-03-14 09:02:00] third", entries[1].Entry.Line())

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)
}

func (suite *ReportRepositoryIntegrationTestSuite) TestRecent_InvalidLimit() {
	_, err := suite.repository.Recent(context.Background(), 0)

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAppend_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.repository.Append(ctx, report.NewEntry(time.Now(), "late"))

	suite.Require().Error(err)
}

func TestReportRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepositoryIntegrationTestSuite))
}
