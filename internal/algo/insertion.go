package algo

import (
	"context"
	"fmt"
)

// Insertion lifts the key at i and shifts larger neighbours right until the
// key's slot is found. Each shift counts as a swap; placing the key does not.
func Insertion(ctx context.Context, r *Run) error {
	n := r.Len()
	r.MarkSorted(0)

	for i := 1; i < n; i++ {
		key := r.At(i)
		hole := i

		for hole > 0 {
			if err := ctx.Err(); err != nil {
				r.put(hole, key)
				return err
			}

			c, err := r.Compare(ctx, r.At(hole-1), key, fmt.Sprintf("Comparing element at index %d with key", hole-1), hole-1, hole)
			if err != nil {
				r.put(hole, key)
				return err
			}
			if c <= 0 {
				break
			}

			err = r.Shift(ctx, hole-1, hole)
			hole--
			if err != nil {
				r.put(hole, key)
				return err
			}
		}

		r.put(hole, key)
		if err := r.EmitSorted(ctx, i, fmt.Sprintf("Inserted key at index %d", hole)); err != nil {
			return err
		}
	}
	return nil
}
