package storage

import "context"

// ReceiptArchive stores a snapshot of each issued bill document. Like
// event publishing, archiving is best-effort from the workflow's view.
type ReceiptArchive interface {
	ArchiveReceipt(ctx context.Context, billNumber string, receipt interface{}) (string, error)
}
