package algo

import (
	"context"
	"fmt"
)

// Quick is quicksort with a Lomuto partition around the last element.
func Quick(ctx context.Context, r *Run) error {
	return quickSort(ctx, r, 0, r.Len()-1)
}

func quickSort(ctx context.Context, r *Run, low, high int) error {
	if low == high {
		return r.EmitSorted(ctx, low, fmt.Sprintf("Element at index %d is in place", low))
	}
	if low > high {
		return nil
	}

	p, err := partition(ctx, r, low, high)
	if err != nil {
		return err
	}
	if err := quickSort(ctx, r, low, p-1); err != nil {
		return err
	}
	return quickSort(ctx, r, p+1, high)
}

// partition returns the pivot's final index. It never fabricates an index:
// on cancellation the error is the only meaningful result.
func partition(ctx context.Context, r *Run, low, high int) (int, error) {
	if err := r.EmitPivot(ctx, high); err != nil {
		return 0, err
	}
	defer r.ClearPivot()

	pivot := r.At(high)
	i := low - 1
	for j := low; j < high; j++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		c, err := r.Compare(ctx, r.At(j), pivot, fmt.Sprintf("Comparing element at index %d with pivot", j), j, high)
		if err != nil {
			return 0, err
		}
		if c < 0 {
			i++
			if err := r.Swap(ctx, i, j); err != nil {
				return 0, err
			}
		}
	}

	if err := r.Swap(ctx, i+1, high); err != nil {
		return 0, err
	}
	r.MarkSorted(i + 1)
	return i + 1, nil
}
