package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artify-backend/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	database.DB = gdb
	t.Cleanup(func() { sqlDB.Close() })
	return mock
}

func router(email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("email", email) })
	r.GET("/dashboard-overview", Overview)
	return r
}

func TestOverviewAggregation(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "artworks" WHERE artist_email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "likes"}).
			AddRow("a1", 5).
			AddRow("a2", 0).
			AddRow("a3", 3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "favorites" WHERE user_email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard-overview?email=a@x.com", nil)
	router("a@x.com").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["totalArtworks"])
	assert.EqualValues(t, 8, data["totalLikes"])
	assert.EqualValues(t, 2, data["favorites"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverviewForbiddenOnEmailMismatch(t *testing.T) {
	setupMockDB(t) // no expectations: forbidden requests never reach the store

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard-overview?email=a@x.com", nil)
	router("b@x.com").ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "forbidden access", body["message"])
	assert.Nil(t, body["data"])
}
