package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eventplanner/internal/database"
	"eventplanner/internal/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// one in-memory database per test, pinned to a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func signup(username, email string) model.SignupRequest {
	return model.SignupRequest{
		Username:   username,
		Email:      email,
		Password:   "hashed-secret",
		Firstname:  "John",
		Lastname:   "Doe",
		Address:    "1 Main St",
		City:       "Nairobi",
		Country:    "Kenya",
		PostalCode: 254,
		Aboutme:    "event planner",
	}
}

func seedEvent(t *testing.T, s *Store, userID uint) *model.Event {
	t.Helper()
	ev, err := s.CreateEvent(userID, model.CreateEventRequest{
		Title: "Launch Party",
		Date:  "2025-06-01",
		Time:  "18:00:00",
	})
	require.NoError(t, err)
	return ev
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := New(testDB(t))

	_, err := s.CreateUser(signup("john_doe", "john@example.com"))
	require.NoError(t, err)

	_, err = s.CreateUser(signup("john_doe", "other@example.com"))
	require.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, s.db.Model(&model.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count, "failed create must not persist anything")
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := New(testDB(t))

	_, err := s.CreateUser(signup("john_doe", "john@example.com"))
	require.NoError(t, err)

	_, err = s.CreateUser(signup("jane_doe", "john@example.com"))
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserByUsername(t *testing.T) {
	s := New(testDB(t))

	created, err := s.CreateUser(signup("john_doe", "john@example.com"))
	require.NoError(t, err)

	user, err := s.UserByUsername("john_doe")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	_, err = s.UserByUsername("nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateEventParsesCanonicalForms(t *testing.T) {
	s := New(testDB(t))

	ev := seedEvent(t, s, 1)
	require.Equal(t, "Launch Party", ev.Title)
	require.Equal(t, "2025-06-01", ev.Date.Format(dateLayout))
	require.Equal(t, "18:00:00", ev.Time)
	require.NotZero(t, ev.ID, "id is server-assigned")
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	s := New(testDB(t))

	_, err := s.CreateEvent(1, model.CreateEventRequest{Title: "x", Date: "01/06/2025"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "date", ve.Field)
	require.Equal(t, "YYYY-MM-DD", ve.Expect)

	var count int64
	require.NoError(t, s.db.Model(&model.Event{}).Count(&count).Error)
	require.Zero(t, count, "nothing persisted on validation failure")
}

func TestCreateEventRejectsBadTime(t *testing.T) {
	s := New(testDB(t))

	_, err := s.CreateEvent(1, model.CreateEventRequest{Title: "x", Date: "2025-06-01", Time: "6pm"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "time", ve.Field)
}

func TestUpdateEventMergePatch(t *testing.T) {
	s := New(testDB(t))
	ev := seedEvent(t, s, 1)

	location := "City Hall"
	updated, err := s.UpdateEvent(ev.ID, model.EventPatch{Location: &location})
	require.NoError(t, err)
	require.Equal(t, "City Hall", updated.Location)
	require.Equal(t, ev.Title, updated.Title, "omitted fields keep their value")
	require.Equal(t, ev.Time, updated.Time)
}

func TestUpdateEventUnknownID(t *testing.T) {
	s := New(testDB(t))

	title := "x"
	_, err := s.UpdateEvent(42, model.EventPatch{Title: &title})
	require.ErrorIs(t, err, ErrEventNotFound)
}
