package requestbook

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	commandType = "RequestBook"
)

// Command represents the intent of a requester to borrow or trade a book
// from its current holder. Permanent marks a trade, otherwise it is a rental.
type Command struct {
	Holder     core.PartyIDString
	Requester  core.PartyIDString
	BookID     core.BookIDString
	Permanent  bool
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// The requester is the acting party.
func BuildCommand(
	holder core.PartyIDString,
	requester core.PartyIDString,
	bookID core.BookIDString,
	permanent bool,
	occurredAt time.Time,
) Command {
	return Command{
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Permanent:  permanent,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
