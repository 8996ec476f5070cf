package refundescrow

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	commandType = "RefundEscrow"
)

// Command represents the holder's intent to release the locked deposit.
// The holder is the acting party; Amount is the value to release.
type Command struct {
	Holder     core.PartyIDString
	Requester  core.PartyIDString
	BookID     core.BookIDString
	Amount     core.AmountUint
	OccurredAt core.OccurredAtTS
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
	amount core.AmountUint,
	occurredAt time.Time,
) Command {
	return Command{
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Amount:     amount,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
