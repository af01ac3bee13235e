package domain

import (
	"fmt"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
)

// DocumentKind identifies a numbered document family. Each (organization,
// kind) pair owns an independent monotonically increasing counter.
type DocumentKind string

const (
	KindJournal            DocumentKind = "journal"
	KindCurrencyAdjustment DocumentKind = "currency_adjustment"
	KindPurchaseOrder      DocumentKind = "purchase_order"
	KindDeliveryChallan    DocumentKind = "delivery_challan"
)

type kindFormat struct {
	Prefix string
	Width  int
}

var kindFormats = map[DocumentKind]kindFormat{
	KindJournal:            {"JE", 6},
	KindCurrencyAdjustment: {"CA", 6},
	KindPurchaseOrder:      {"PO", 5},
	KindDeliveryChallan:    {"DC", 5},
}

// ParseDocumentKind validates a raw document kind name.
func ParseDocumentKind(s string) (DocumentKind, error) {
	if _, ok := kindFormats[DocumentKind(s)]; !ok {
		return "", fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, s)
	}
	return DocumentKind(s), nil
}

// FormatNumber renders counter value n as the kind's zero-padded reference,
// e.g. JE-000042 or PO-00007.
func (k DocumentKind) FormatNumber(n int64) string {
	f, ok := kindFormats[k]
	if !ok {
		return fmt.Sprintf("%s-%d", k, n)
	}
	return fmt.Sprintf("%s-%0*d", f.Prefix, f.Width, n)
}
