// Package archivebook implements the Archive Book use case.
//
// Archiving closes a custody cycle. For a rental the holder confirms the
// returned book arrived; for a permanent trade the requester seals the deal,
// which transfers ownership. After archiving, the locked escrow becomes
// releasable.
package archivebook
