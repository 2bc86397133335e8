package follow

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = originalDB
		mockDB.Close()
	})

	return mock
}

func TestIsFollowing(t *testing.T) {
	tests := []struct {
		name           string
		followerID     string
		followedID     string
		mockRows       *sqlmock.Rows
		expectedResult bool
	}{
		{
			name:       "User is following",
			followerID: "user1",
			followedID: "user2",
			mockRows: sqlmock.NewRows([]string{"id", "created_at", "follower_id", "followed_id"}).
				AddRow("follow1", time.Now(), "user1", "user2"),
			expectedResult: true,
		},
		{
			name:           "User is not following",
			followerID:     "user1",
			followedID:     "user2",
			mockRows:       sqlmock.NewRows([]string{"id", "created_at", "follower_id", "followed_id"}),
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := setupMockDB(t)
			mock.ExpectQuery(`SELECT`).WillReturnRows(tt.mockRows)

			result, err := IsFollowing(tt.followerID, tt.followedID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestCreateSelfFollow(t *testing.T) {
	setupMockDB(t)

	err := Create("user1", "user1")

	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateInsertsEdge(t *testing.T) {
	mock := setupMockDB(t)

	// Pas d'arête existante, l'insertion a lieu
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "follower_id", "followed_id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "follows"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := Create("user1", "user2")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIsIdempotent(t *testing.T) {
	mock := setupMockDB(t)

	// L'arête existe déjà : aucun INSERT ne doit partir
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "follower_id", "followed_id"}).
			AddRow("follow1", time.Now(), "user1", "user2"))

	err := Create("user1", "user2")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAbsorbsDuplicateRace(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "follower_id", "followed_id"}))
	mock.ExpectBegin()
	// Violation de l'index unique : une insertion concurrente a gagné
	mock.ExpectExec(`INSERT INTO "follows"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := Create("user1", "user2")

	assert.NoError(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	mock := setupMockDB(t)

	// Arête absente : DELETE ne touche aucune ligne, pas d'erreur
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "follows"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := Delete("user1", "user2")

	assert.NoError(t, err)
}

func TestFollowedIDs(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}).
			AddRow("user2").
			AddRow("user3"))

	ids, err := FollowedIDs("user1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"user2", "user3"}, ids)
}

func TestFollowerCount(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := FollowerCount("user2")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
