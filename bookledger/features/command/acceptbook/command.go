package acceptbook

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	commandType = "AcceptBook"
)

// Command represents the requester's confirmation of receipt.
// The requester is the acting party; Note is a free-form condition remark.
type Command struct {
	Holder     core.PartyIDString
	Requester  core.PartyIDString
	BookID     core.BookIDString
	Note       core.NoteString
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
	note core.NoteString,
	occurredAt time.Time,
) Command {
	return Command{
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Note:       note,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
