package shell

import (
	"errors"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0)

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookRegisteredEventType:
		return unmarshalBookRegistered(storableEvent.PayloadJSON)

	case core.BookRemovedEventType:
		return unmarshalBookRemoved(storableEvent.PayloadJSON)

	case core.BookRequestedEventType:
		return unmarshalBookRequested(storableEvent.PayloadJSON)

	case core.EscrowCommittedEventType:
		return unmarshalEscrowCommitted(storableEvent.PayloadJSON)

	case core.EscrowDepositedEventType:
		return unmarshalEscrowDeposited(storableEvent.PayloadJSON)

	case core.BookShippedEventType:
		return unmarshalBookShipped(storableEvent.PayloadJSON)

	case core.BookAcceptedEventType:
		return unmarshalBookAccepted(storableEvent.PayloadJSON)

	case core.BookReturnShippedEventType:
		return unmarshalBookReturnShipped(storableEvent.PayloadJSON)

	case core.BookArchivedEventType:
		return unmarshalBookArchived(storableEvent.PayloadJSON)

	case core.EscrowRefundedEventType:
		return unmarshalEscrowRefunded(storableEvent.PayloadJSON)

	case core.BookRejectedEventType:
		return unmarshalBookRejected(storableEvent.PayloadJSON)

	case core.DefenseVerifiedEventType:
		return unmarshalDefenseVerified(storableEvent.PayloadJSON)

	default:
		if strings.HasSuffix(storableEvent.EventType, core.OperationFailedEventTypeSuffix) {
			return unmarshalCustodyOperationFailed(storableEvent.PayloadJSON)
		}
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalBookRegistered(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookRegistered)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookRegistered{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookRegistered{
		EventType:  payload.EventType,
		Owner:      payload.Owner,
		BookID:     payload.BookID,
		Copies:     payload.Copies,
		Location:   payload.Location,
		Publisher:  payload.Publisher,
		Author:     payload.Author,
		Title:      payload.Title,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookRemoved(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookRemoved)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookRemoved{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookRemoved{
		EventType:  payload.EventType,
		Owner:      payload.Owner,
		BookID:     payload.BookID,
		Permanent:  payload.Permanent,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookRequested(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookRequested)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookRequested{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookRequested{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		Permanent:  payload.Permanent,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalEscrowCommitted(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.EscrowCommitted)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.EscrowCommitted{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.EscrowCommitted{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		Amount:     payload.Amount,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalEscrowDeposited(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.EscrowDeposited)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.EscrowDeposited{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.EscrowDeposited{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		Amount:     payload.Amount,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookShipped(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookShipped)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookShipped{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookShipped{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookAccepted(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookAccepted)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookAccepted{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookAccepted{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		Note:       payload.Note,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookReturnShipped(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookReturnShipped)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookReturnShipped{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookReturnShipped{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		Note:       payload.Note,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookArchived(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookArchived)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookArchived{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookArchived{
		EventType:            payload.EventType,
		Holder:               payload.Holder,
		Requester:            payload.Requester,
		BookID:               payload.BookID,
		Note:                 payload.Note,
		OwnershipTransferred: payload.OwnershipTransferred,
		OccurredAt:           payload.OccurredAt,
	}, nil
}

func unmarshalEscrowRefunded(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.EscrowRefunded)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.EscrowRefunded{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.EscrowRefunded{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		Payee:      payload.Payee,
		Amount:     payload.Amount,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookRejected(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookRejected)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookRejected{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookRejected{
		EventType:     payload.EventType,
		Holder:        payload.Holder,
		Requester:     payload.Requester,
		BookID:        payload.BookID,
		ClaimedAmount: payload.ClaimedAmount,
		OccurredAt:    payload.OccurredAt,
	}, nil
}

func unmarshalDefenseVerified(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.DefenseVerified)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.DefenseVerified{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.DefenseVerified{
		EventType:  payload.EventType,
		Holder:     payload.Holder,
		Requester:  payload.Requester,
		BookID:     payload.BookID,
		Amount:     payload.Amount,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalCustodyOperationFailed(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.CustodyOperationFailed)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.CustodyOperationFailed{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.CustodyOperationFailed{
		EventType:     payload.EventType,
		Holder:        payload.Holder,
		Requester:     payload.Requester,
		BookID:        payload.BookID,
		FailureReason: payload.FailureReason,
		OccurredAt:    payload.OccurredAt,
	}, nil
}
