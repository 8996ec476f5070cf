package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/bookledger/shared/shell"
	"github.com/peershelf/bookledger-go/eventstore"
)

func Test_DomainEventsFrom_RebuildsTheCustodyHistory(t *testing.T) {
	// arrange
	bookID := core.BookIDFromUint(420013)
	now := time.Now().UTC().Truncate(time.Millisecond)

	domainEvents := core.DomainEvents{
		core.BuildBookRegistered("holder-1", bookID, 1, "shelf 3", "Pub", "Author", "Title", now.Add(-2*time.Hour)),
		core.BuildBookRequested("holder-1", "requester-2", bookID, false, now.Add(-1*time.Hour)),
		core.BuildEscrowCommitted("holder-1", "requester-2", bookID, 300, now),
	}

	storableEvents := make(eventstore.StorableEvents, 0, len(domainEvents))
	for _, domainEvent := range domainEvents {
		storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(domainEvent)
		assert.NoError(t, err)
		storableEvents = append(storableEvents, storableEvent)
	}

	// act
	history, err := shell.DomainEventsFrom(storableEvents)

	// assert
	assert.NoError(t, err)
	assert.Len(t, history, 3)

	committed, ok := history[2].(core.EscrowCommitted)
	assert.True(t, ok, "Expected EscrowCommitted event")
	assert.Equal(t, core.AmountUint(300), committed.Amount)
	assert.Equal(t, core.BookIDString(bookID), committed.BookID)
}

func Test_DomainEventsFrom_DispatchesFailureEventsBySuffix(t *testing.T) {
	// arrange - failure events carry a dynamic type, e.g. "RequestBookFailed"
	bookID := core.BookIDFromUint(420013)
	now := time.Now().UTC().Truncate(time.Millisecond)

	failureEvent := core.BuildCustodyOperationFailed(
		"RequestBook", "holder-1", "requester-2", bookID, "another cycle is open", now,
	)

	uid := uuid.New()
	storableEvent, err := shell.StorableEventFrom(failureEvent, shell.BuildEventMetadata(uid, uid, uid))
	assert.NoError(t, err)
	assert.Equal(t, "RequestBookFailed", storableEvent.EventType)

	// act
	history, err := shell.DomainEventsFrom(eventstore.StorableEvents{storableEvent})

	// assert
	assert.NoError(t, err)
	assert.Len(t, history, 1)

	failed, ok := history[0].(core.CustodyOperationFailed)
	assert.True(t, ok, "Expected CustodyOperationFailed event")
	assert.Equal(t, "RequestBookFailed", failed.EventType)
	assert.Equal(t, "another cycle is open", failed.FailureReason)
	assert.True(t, failed.IsFailureEvent())
}

func Test_DomainEventsFrom_RejectsUnknownEventTypes(t *testing.T) {
	// arrange
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata(
		"SomethingUnknown",
		time.Now(),
		[]byte(`{}`),
	)
	assert.NoError(t, err)

	// act
	_, err = shell.DomainEventsFrom(eventstore.StorableEvents{storableEvent})

	// assert
	assert.Error(t, err)
}
