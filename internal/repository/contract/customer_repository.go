package contract

import (
	"context"
	"errors"

	"github.com/marcosalmeidaedp/bot-cliente/internal/entity"
)

var (
	// ErrSourceUnavailable: the record source cannot be read at all.
	// Fatal at startup — the bot must not serve without data.
	ErrSourceUnavailable = errors.New("customer source unavailable")

	// ErrMissingColumn: the source is readable but one of the mandatory
	// columns is absent after header normalization. Also fatal at startup.
	ErrMissingColumn = errors.New("mandatory column missing")
)

// ICustomerRepository loads the customer dataset from an external source.
// Load is called exactly once, at startup; the returned rows are copied into
// the immutable record store and the repository is not consulted again.
type ICustomerRepository interface {
	Load(ctx context.Context) ([]entity.Customer, error)

	// Source returns a human-readable tag of where the data comes from.
	Source() string
}
