package intern

import (
	"fmt"

	"github.com/lumanik/slab/errs"
	"github.com/lumanik/slab/internal/options"
)

// Option configures a Table during New.
type Option = options.Option[*Table]

// WithChunkSize sets how many strings each storage chunk holds. Zero keeps
// DefaultChunkSize; negative sizes fail New with errs.ErrInvalidChunkSize.
//
// Larger chunks amortize allocation for big tables; smaller chunks waste
// less memory on tables that stay tiny.
func WithChunkSize(size int) Option {
	return options.New(func(t *Table) error {
		if size < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidChunkSize, size)
		}
		t.chunkSize = size

		return nil
	})
}

// WithCapacityHint presizes the table for the expected number of distinct
// strings. The hint only reserves space; a table may grow past it freely.
// Negative hints fail New with errs.ErrInvalidCapacityHint.
func WithCapacityHint(hint int) Option {
	return options.New(func(t *Table) error {
		if hint < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCapacityHint, hint)
		}
		t.capacityHint = hint

		return nil
	})
}
