package like

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

func likeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "user_id", "post_id"})
}

func TestTogglePostInsertsWhenAbsent(t *testing.T) {
	mock := setupMockDB(t)

	// Le post existe
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// Aucun like existant
	mock.ExpectQuery(`SELECT`).WillReturnRows(likeRows())
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "likes"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	state, err := TogglePost("user1", "post1")

	assert.NoError(t, err)
	assert.Equal(t, Liked, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTogglePostRemovesWhenPresent(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(likeRows().AddRow("like1", time.Now(), "user1", "post1"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	state, err := TogglePost("user1", "post1")

	assert.NoError(t, err)
	assert.Equal(t, Unliked, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTogglePostNotFound(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := TogglePost("user1", "missing")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTogglePostLosingRaceIsNotAnError(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT`).WillReturnRows(likeRows())
	mock.ExpectBegin()
	// Un toggle concurrent a inséré entre la lecture et l'écriture :
	// l'index unique tranche, l'état vrai est « liké »
	mock.ExpectExec(`INSERT INTO "likes"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	state, err := TogglePost("user1", "post1")

	assert.NoError(t, err)
	assert.Equal(t, Liked, state)
}

func TestToggleCommentInsertsWhenAbsent(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "user_id", "comment_id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "comment_likes"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	state, err := ToggleComment("user1", "comment1")

	assert.NoError(t, err)
	assert.Equal(t, Liked, state)
}

func TestLikedPostIDs(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).
			AddRow("post1").
			AddRow("post2"))

	set, err := LikedPostIDs("user1")

	assert.NoError(t, err)
	assert.True(t, set["post1"])
	assert.True(t, set["post2"])
	assert.False(t, set["post3"])
}

func TestCountsForPosts(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "total"}).
			AddRow("post1", 4).
			AddRow("post2", 1))

	counts, err := CountsForPosts([]string{"post1", "post2", "post3"})

	assert.NoError(t, err)
	assert.Equal(t, int64(4), counts["post1"])
	assert.Equal(t, int64(1), counts["post2"])
	assert.Equal(t, int64(0), counts["post3"])
}

func TestCountsForPostsEmptyInput(t *testing.T) {
	setupMockDB(t)

	// Aucun id : aucune requête ne doit partir
	counts, err := CountsForPosts(nil)

	assert.NoError(t, err)
	assert.Empty(t, counts)
}
