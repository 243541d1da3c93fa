package event

import (
	"sort"
	"testing"

	eventRepo "serenispa/database/repository/event"
	"serenispa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// stubEventRepo is an in-memory EventRepository with $addToSet/$pull
// semantics for participants.
type stubEventRepo struct {
	events map[string]*models.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: map[string]*models.Event{}}
}

func (s *stubEventRepo) Create(event *models.Event) error {
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *stubEventRepo) GetByID(id string) (*models.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, eventRepo.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (s *stubEventRepo) ListSortedByDate() ([]models.Event, error) {
	out := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *stubEventRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	e, ok := s.events[id]
	if !ok {
		return eventRepo.ErrNotFound
	}
	if v, ok := updateDoc["title"]; ok {
		e.Title = v.(string)
	}
	if v, ok := updateDoc["description"]; ok {
		e.Description = v.(string)
	}
	if v, ok := updateDoc["date"]; ok {
		e.Date = v.(string)
	}
	if v, ok := updateDoc["time"]; ok {
		e.Time = v.(string)
	}
	if v, ok := updateDoc["location"]; ok {
		e.Location = v.(string)
	}
	if v, ok := updateDoc["image"]; ok {
		e.Image = v.(string)
	}
	if v, ok := updateDoc["maxParticipants"]; ok {
		e.MaxParticipants = v.(int)
	}
	return nil
}

func (s *stubEventRepo) Delete(id string) error {
	if _, ok := s.events[id]; !ok {
		return eventRepo.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *stubEventRepo) AddParticipant(eventID, userID string) error {
	e, ok := s.events[eventID]
	if !ok {
		return eventRepo.ErrNotFound
	}
	for _, p := range e.RegisteredParticipants {
		if p == userID {
			return nil
		}
	}
	e.RegisteredParticipants = append(e.RegisteredParticipants, userID)
	return nil
}

func (s *stubEventRepo) RemoveParticipant(eventID, userID string) error {
	e, ok := s.events[eventID]
	if !ok {
		return eventRepo.ErrNotFound
	}
	for i, p := range e.RegisteredParticipants {
		if p == userID {
			e.RegisteredParticipants = append(e.RegisteredParticipants[:i], e.RegisteredParticipants[i+1:]...)
			return nil
		}
	}
	return nil
}

func validEvent() CreateRequest {
	return CreateRequest{
		Title:       "Вечер ароматерапии",
		Description: "Знакомство с эфирными маслами",
		Date:        "2025-06-20",
		Time:        "18:00",
		Location:    "Студия Serenispa",
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}

	req := validEvent()
	req.Title = ""
	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validEvent()
	req.Location = ""
	_, err = svc.Create(req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateEvent(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}

	e, err := svc.Create(validEvent())
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.NotNil(t, e.RegisteredParticipants)
	assert.Empty(t, e.RegisteredParticipants)
}

func TestUpdateEventPartial(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}

	e, err := svc.Create(validEvent())
	require.NoError(t, err)

	newTitle := "Мастер-класс по массажу"
	newMax := 12
	updated, err := svc.Update(e.ID, UpdateRequest{Title: &newTitle, MaxParticipants: &newMax})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, 12, updated.MaxParticipants)
	// Untouched fields keep their values.
	assert.Equal(t, e.Description, updated.Description)
	assert.Equal(t, e.Date, updated.Date)
}

func TestRegisterForEvent(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}

	e, err := svc.Create(validEvent())
	require.NoError(t, err)

	updated, err := svc.Register(e.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, updated.RegisteredParticipants)

	// A duplicate registration is rejected, not silently ignored.
	_, err = svc.Register(e.ID, "user-1")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterEventFull(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}

	req := validEvent()
	req.MaxParticipants = 2
	e, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.Register(e.ID, "user-1")
	require.NoError(t, err)
	_, err = svc.Register(e.ID, "user-2")
	require.NoError(t, err)

	_, err = svc.Register(e.ID, "user-3")
	assert.ErrorIs(t, err, ErrEventFull)
}

func TestRegisterUnlimitedCapacity(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}

	// MaxParticipants of zero means no cap.
	e, err := svc.Create(validEvent())
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		_, err := svc.Register(e.ID, string(rune('a'+i%26))+string(rune('0'+i/26)))
		require.NoError(t, err)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}
	_, err := svc.Register("missing", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnregister(t *testing.T) {
	svc := &DefaultEventService{Repo: newStubEventRepo()}

	e, err := svc.Create(validEvent())
	require.NoError(t, err)

	_, err = svc.Register(e.ID, "user-1")
	require.NoError(t, err)

	updated, err := svc.Unregister(e.ID, "user-1")
	require.NoError(t, err)
	assert.Empty(t, updated.RegisteredParticipants)

	// Unregistering someone who isn't registered is a no-op.
	updated, err = svc.Unregister(e.ID, "user-1")
	require.NoError(t, err)
	assert.Empty(t, updated.RegisteredParticipants)
}
