package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/dto"
	"github.com/smotired/bulletinator/internal/response"
)

func newPinService(f *serviceFixture) PinService {
	return NewPinService(f.pins, f.items, f.permissions(), nil, testLogger())
}

func (f *serviceFixture) newPin(itemID uuid.UUID) *domain.Pin {
	pin := &domain.Pin{BoardID: f.board.ID, ItemID: itemID}
	pin.ID = uuid.New()
	return pin
}

// stubPins makes FindByID and FindByItemID resolve against a fixed set.
func (f *serviceFixture) stubPins(pins ...*domain.Pin) {
	f.pins.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
		for _, pin := range pins {
			if pin.ID == id {
				return pin, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
	f.pins.FindByItemIDFunc = func(ctx context.Context, itemID uuid.UUID) (*domain.Pin, error) {
		for _, pin := range pins {
			if pin.ItemID == itemID {
				return pin, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func TestPinService_Create(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	note := f.newNote("target")
	f.stubItems(note)
	f.stubPins()

	var created *domain.Pin
	f.pins.CreateFunc = func(ctx context.Context, pin *domain.Pin) error {
		pin.ID = uuid.New()
		created = pin
		return nil
	}
	svc := newPinService(f)

	resp, err := svc.Create(ctx, f.editor, f.board.ID, &dto.CreatePinRequest{
		ItemID: note.ID,
		Label:  strPtr("start here"),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, note.ID, resp.ItemID)
	assert.Equal(t, "start here", *resp.Label)
	// New pins always report an empty connection set, never null.
	assert.NotNil(t, resp.Connections)
	assert.Empty(t, resp.Connections)
}

func TestPinService_CreateRejections(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	note := f.newNote("pinned already")
	list := f.newList("groceries")
	foreign := f.newNote("elsewhere")
	foreign.BoardID = uuid.New()
	f.stubItems(note, list, foreign)
	f.stubPins(f.newPin(note.ID))
	svc := newPinService(f)

	t.Run("one pin per item", func(t *testing.T) {
		_, err := svc.Create(ctx, f.editor, f.board.ID, &dto.CreatePinRequest{ItemID: note.ID})
		requireAppError(t, err, response.ErrCodeDuplicateEntity)
	})

	t.Run("lists cannot be pinned", func(t *testing.T) {
		_, err := svc.Create(ctx, f.editor, f.board.ID, &dto.CreatePinRequest{ItemID: list.ID})
		requireAppError(t, err, response.ErrCodeInvalidOperation)
	})

	t.Run("item must be on this board", func(t *testing.T) {
		_, err := svc.Create(ctx, f.editor, f.board.ID, &dto.CreatePinRequest{ItemID: foreign.ID})
		requireAppError(t, err, response.ErrCodeEntityNotFound)
	})

	t.Run("strangers see nothing", func(t *testing.T) {
		free := f.newNote("free")
		f.stubItems(free)
		f.stubPins()
		_, err := svc.Create(ctx, f.stranger, f.board.ID, &dto.CreatePinRequest{ItemID: free.ID})
		requireAppError(t, err, response.ErrCodeEntityNotFound)
	})
}

func TestPinService_Move(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	source := f.newNote("source")
	dest := f.newNote("dest")
	list := f.newList("groceries")
	f.stubItems(source, dest, list)
	pin := f.newPin(source.ID)
	f.stubPins(pin)

	updated := false
	f.pins.UpdateFunc = func(ctx context.Context, p *domain.Pin) error {
		updated = true
		return nil
	}
	svc := newPinService(f)

	// The pin's own item already carries a pin, so the move is a duplicate.
	_, err := svc.Move(ctx, f.editor, f.board.ID, pin.ID, source.ID)
	requireAppError(t, err, response.ErrCodeDuplicateEntity)
	assert.False(t, updated)

	// Target rules apply to the new item too.
	_, err = svc.Move(ctx, f.editor, f.board.ID, pin.ID, list.ID)
	requireAppError(t, err, response.ErrCodeInvalidOperation)

	resp, err := svc.Move(ctx, f.editor, f.board.ID, pin.ID, dest.ID)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, dest.ID, resp.ItemID)
}

func TestPinService_Connect(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	a := f.newPin(uuid.New())
	b := f.newPin(uuid.New())
	f.stubPins(a, b)

	var edges [][2]uuid.UUID
	f.pins.ConnectFunc = func(ctx context.Context, pinID, otherID uuid.UUID) error {
		edges = append(edges, [2]uuid.UUID{pinID, otherID})
		return nil
	}
	f.pins.LoadConnectionsFunc = func(ctx context.Context, pin *domain.Pin) error {
		if pin.ID == a.ID {
			pin.ConnectionIDs = []uuid.UUID{b.ID}
		} else {
			pin.ConnectionIDs = []uuid.UUID{a.ID}
		}
		return nil
	}
	svc := newPinService(f)

	resp, err := svc.Connect(ctx, f.editor, f.board.ID, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, [2]uuid.UUID{a.ID, b.ID}, edges[0])
	// Both endpoints come back, in caller order, each seeing the other.
	require.Len(t, resp, 2)
	assert.Equal(t, a.ID, resp[0].ID)
	assert.Equal(t, b.ID, resp[1].ID)
	assert.Equal(t, []uuid.UUID{b.ID}, resp[0].Connections)
	assert.Equal(t, []uuid.UUID{a.ID}, resp[1].Connections)

	// A pin never connects to itself.
	_, err = svc.Connect(ctx, f.editor, f.board.ID, a.ID, a.ID)
	requireAppError(t, err, response.ErrCodeInvalidOperation)

	// Both endpoints must exist on the board.
	_, err = svc.Connect(ctx, f.editor, f.board.ID, a.ID, uuid.New())
	requireAppError(t, err, response.ErrCodeEntityNotFound)
}

func TestPinService_Disconnect(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	a := f.newPin(uuid.New())
	b := f.newPin(uuid.New())
	f.stubPins(a, b)

	var severed [][2]uuid.UUID
	f.pins.DisconnectFunc = func(ctx context.Context, pinID, otherID uuid.UUID) error {
		severed = append(severed, [2]uuid.UUID{pinID, otherID})
		return nil
	}
	svc := newPinService(f)

	resp, err := svc.Disconnect(ctx, f.editor, f.board.ID, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, severed, 1)
	assert.Equal(t, [2]uuid.UUID{a.ID, b.ID}, severed[0])
	require.Len(t, resp, 2)
	assert.Equal(t, a.ID, resp[0].ID)
	assert.Equal(t, b.ID, resp[1].ID)
	assert.Empty(t, resp[0].Connections)
	assert.Empty(t, resp[1].Connections)
}

func TestPinService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	pin := f.newPin(uuid.New())
	f.stubPins(pin)

	deleted := false
	f.pins.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		assert.Equal(t, pin.ID, id)
		deleted = true
		return nil
	}
	svc := newPinService(f)

	requireAppError(t, svc.Delete(ctx, f.stranger, f.board.ID, pin.ID), response.ErrCodeEntityNotFound)
	assert.False(t, deleted)

	require.NoError(t, svc.Delete(ctx, f.owner, f.board.ID, pin.ID))
	assert.True(t, deleted)
}

func TestPinService_GetHidesOtherBoards(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	pin := f.newPin(uuid.New())
	pin.BoardID = uuid.New()
	f.stubPins(pin)
	svc := newPinService(f)

	_, err := svc.Get(ctx, f.owner, f.board.ID, pin.ID)
	requireAppError(t, err, response.ErrCodeEntityNotFound)
}
