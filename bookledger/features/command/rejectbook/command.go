package rejectbook

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	commandType = "RejectBook"
)

// Command represents the requester's dispute of an outbound shipment.
// ClaimedAmount is the deposit value the requester wants back.
type Command struct {
	Holder        core.PartyIDString
	Requester     core.PartyIDString
	BookID        core.BookIDString
	ClaimedAmount core.AmountUint
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	holder core.PartyIDString,
	requester core.PartyIDString,
	bookID core.BookIDString,
	claimedAmount core.AmountUint,
	occurredAt time.Time,
) Command {
	return Command{
		Holder:        holder,
		Requester:     requester,
		BookID:        bookID,
		ClaimedAmount: claimedAmount,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
