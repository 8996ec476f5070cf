package helper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	. "github.com/peershelf/bookledger-go/bookledger/shared/core"  //nolint:revive
	. "github.com/peershelf/bookledger-go/bookledger/shared/shell" //nolint:revive
	. "github.com/peershelf/bookledger-go/eventstore" //nolint:revive
	"github.com/peershelf/bookledger-go/eventstore/postgresengine"
)

func GivenUniqueBookID(t testing.TB) BookIDString {
	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id.String()
}

func GivenUniqueParty(t testing.TB) PartyIDString {
	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id.String()
}

func QueryMaxSequenceNumberBeforeAppend(
	t testing.TB,
	ctx context.Context,
	es postgresengine.EventStore,
	filter Filter,
) MaxSequenceNumberUint {

	_, maxSequenceNumBeforeAppend, err := es.Query(ctx, filter)
	assert.NoError(t, err, "error in arranging test data")

	return maxSequenceNumBeforeAppend
}

func FilterAllEventTypesForOneBook(bookID BookIDString) Filter {
	filter := BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			BookRegisteredEventType,
			BookRemovedEventType,
			BookRequestedEventType,
			EscrowCommittedEventType,
			EscrowDepositedEventType,
			BookShippedEventType,
			BookAcceptedEventType,
			BookReturnShippedEventType,
			BookArchivedEventType,
			EscrowRefundedEventType,
			BookRejectedEventType,
			DefenseVerifiedEventType).
		AndAnyPredicateOf(P("BookID", bookID)).
		Finalize()

	return filter
}

func FixtureBookRegistered(owner PartyIDString, bookID BookIDString, fakeClock time.Time) DomainEvent {
	return BuildBookRegistered(
		owner,
		bookID,
		1,
		"shelf 3, row 2",
		"O'Reilly Media, Inc.",
		"Vlad Khononov",
		"Learning Domain-Driven Design",
		fakeClock,
	)
}

func ToStorable(t testing.TB, domainEvent DomainEvent) StorableEvent {
	storableEvent, err := StorableEventWithEmptyMetadataFrom(domainEvent)
	assert.NoError(t, err, "error in arranging test data")

	return storableEvent
}

func ToStorableWithMetadata(t testing.TB, domainEvent DomainEvent, eventMetadata EventMetadata) StorableEvent {
	storableEvent, err := StorableEventFrom(domainEvent, eventMetadata)
	assert.NoError(t, err, "error in arranging test data")

	return storableEvent
}

func GivenBookRegisteredWasAppended(t testing.TB, ctx context.Context, es postgresengine.EventStore, owner PartyIDString, bookID BookIDString, fakeClock time.Time) DomainEvent {
	return appendForBook(t, ctx, es, bookID, FixtureBookRegistered(owner, bookID, fakeClock))
}

func GivenBookRequestedWasAppended(t testing.TB, ctx context.Context, es postgresengine.EventStore, holder PartyIDString, requester PartyIDString, bookID BookIDString, permanent bool, fakeClock time.Time) DomainEvent {
	return appendForBook(t, ctx, es, bookID, BuildBookRequested(holder, requester, bookID, permanent, fakeClock))
}

func GivenEscrowCommittedWasAppended(t testing.TB, ctx context.Context, es postgresengine.EventStore, holder PartyIDString, requester PartyIDString, bookID BookIDString, amount AmountUint, fakeClock time.Time) DomainEvent {
	return appendForBook(t, ctx, es, bookID, BuildEscrowCommitted(holder, requester, bookID, amount, fakeClock))
}

func GivenEscrowDepositedWasAppended(t testing.TB, ctx context.Context, es postgresengine.EventStore, holder PartyIDString, requester PartyIDString, bookID BookIDString, amount AmountUint, fakeClock time.Time) DomainEvent {
	return appendForBook(t, ctx, es, bookID, BuildEscrowDeposited(holder, requester, bookID, amount, fakeClock))
}

func GivenBookShippedWasAppended(t testing.TB, ctx context.Context, es postgresengine.EventStore, holder PartyIDString, requester PartyIDString, bookID BookIDString, fakeClock time.Time) DomainEvent {
	return appendForBook(t, ctx, es, bookID, BuildBookShipped(holder, requester, bookID, fakeClock))
}

func GivenBookAcceptedWasAppended(t testing.TB, ctx context.Context, es postgresengine.EventStore, holder PartyIDString, requester PartyIDString, bookID BookIDString, fakeClock time.Time) DomainEvent {
	return appendForBook(t, ctx, es, bookID, BuildBookAccepted(holder, requester, bookID, "", fakeClock))
}

func appendForBook(t testing.TB, ctx context.Context, es postgresengine.EventStore, bookID BookIDString, event DomainEvent) DomainEvent {
	filter := FilterAllEventTypesForOneBook(bookID)
	err := es.Append(
		ctx,
		filter,
		QueryMaxSequenceNumberBeforeAppend(t, ctx, es, filter),
		ToStorable(t, event),
	)
	assert.NoError(t, err, "error in arranging test data")

	return event
}
