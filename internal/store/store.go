// Package store implements the persistence core of the event planner: typed
// CRUD over the seven entity kinds, the event-scoped child graph, task
// assignment bookkeeping and the read-only report computations. All
// components receive an injected *gorm.DB handle; there is no package-level
// connection.
package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"eventplanner/internal/model"
)

// Canonical textual date forms accepted by write operations.
const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04:05"
	dateTimeLayout = "2006-01-02T15:04:05"
)

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Expect: "YYYY-MM-DD"}
	}
	return t, nil
}

func parseClock(field, value string) (string, error) {
	if _, err := time.Parse(clockLayout, value); err != nil {
		return "", &ValidationError{Field: field, Expect: "HH:MM:SS"}
	}
	return value, nil
}

func parseDateTime(field, value string) (time.Time, error) {
	t, err := time.Parse(dateTimeLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Expect: "YYYY-MM-DDTHH:MM:SS"}
	}
	return t, nil
}

// firstByID loads any entity kind by primary key, translating the driver's
// not-found into the caller's sentinel.
func firstByID[T any](db *gorm.DB, id uint, notFound error) (*T, error) {
	var out T
	if err := db.First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, storageErr("get", err)
	}
	return &out, nil
}

// Store is the entity store: plain CRUD plus the per-kind invariants
// (user uniqueness, date parsing) that do not involve an event ancestor.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser checks the unique (username, email) pair in a single query
// before inserting; on collision nothing is written. A uniqueness race that
// only surfaces at commit time is reported as the same duplicate error.
func (s *Store) CreateUser(req model.SignupRequest) (*model.User, error) {
	var existing model.User
	err := s.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Username == req.Username {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storageErr("create user", err)
	}

	user := model.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Aboutme:    req.Aboutme,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, storageErr("create user", err)
	}
	return &user, nil
}

func (s *Store) UserByID(id uint) (*model.User, error) {
	return firstByID[model.User](s.db, id, ErrUserNotFound)
}

func (s *Store) UserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageErr("get user", err)
	}
	return &user, nil
}

func (s *Store) CreateEvent(userID uint, req model.CreateEventRequest) (*model.Event, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	clock := ""
	if req.Time != "" {
		if clock, err = parseClock("time", req.Time); err != nil {
			return nil, err
		}
	}

	ev := model.Event{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Date:        date,
		Time:        clock,
		Image:       req.Image,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := s.db.Create(&ev).Error; err != nil {
		return nil, storageErr("create event", err)
	}
	return &ev, nil
}

func (s *Store) Events() ([]model.Event, error) {
	events := make([]model.Event, 0)
	if err := s.db.Order("date asc").Find(&events).Error; err != nil {
		return nil, storageErr("list events", err)
	}
	return events, nil
}

func (s *Store) Event(id uint) (*model.Event, error) {
	return firstByID[model.Event](s.db, id, ErrEventNotFound)
}

// UpdateEvent applies a merge patch: only non-nil fields overwrite.
func (s *Store) UpdateEvent(id uint, patch model.EventPatch) (*model.Event, error) {
	ev, err := s.Event(id)
	if err != nil {
		return nil, err
	}
	if patch.Date != nil {
		if ev.Date, err = parseDate("date", *patch.Date); err != nil {
			return nil, err
		}
	}
	if patch.Time != nil {
		if ev.Time, err = parseClock("time", *patch.Time); err != nil {
			return nil, err
		}
	}
	if patch.Title != nil {
		ev.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Image != nil {
		ev.Image = *patch.Image
	}
	if patch.Location != nil {
		ev.Location = *patch.Location
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.Category != nil {
		ev.Category = *patch.Category
	}
	if err := s.db.Save(ev).Error; err != nil {
		return nil, storageErr("update event", err)
	}
	return ev, nil
}
