// Package registerbook implements the Register Book use case.
//
// Only the minter may register a book, and a book id that already has an
// owner cannot be registered again. The registered book is owned by the
// minter until a completed trade transfers it.
//
// It follows the Command-Query-Decide-Append pattern with proper separation
// between infrastructure concerns (CommandHandler) and pure business logic
// (Decide function).
package registerbook
