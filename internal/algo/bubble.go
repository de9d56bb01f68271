package algo

import (
	"context"
	"fmt"
)

// Bubble compares each adjacent pair and swaps it when out of order. After
// pass i the trailing position n-i-1 holds its final value.
func Bubble(ctx context.Context, r *Run) error {
	n := r.Len()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			c, err := r.Compare(ctx, r.At(j), r.At(j+1), fmt.Sprintf("Comparing elements at indices %d and %d", j, j+1), j, j+1)
			if err != nil {
				return err
			}
			if c > 0 {
				if err := r.Swap(ctx, j, j+1); err != nil {
					return err
				}
			}
		}
		r.MarkSorted(n - i - 1)
	}
	r.MarkSorted(0)
	return nil
}
