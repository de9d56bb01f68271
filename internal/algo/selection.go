package algo

import "context"

// Selection scans the unsorted suffix for its minimum and swaps it into place.
func Selection(ctx context.Context, r *Run) error {
	n := r.Len()
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			c, err := r.Compare(ctx, r.At(j), r.At(minIdx), "Finding minimum element in unsorted portion", j, minIdx)
			if err != nil {
				return err
			}
			if c < 0 {
				minIdx = j
			}
		}

		if minIdx != i {
			if err := r.Swap(ctx, i, minIdx); err != nil {
				return err
			}
		}
		r.MarkSorted(i)
	}
	r.MarkSorted(n - 1)
	return nil
}
