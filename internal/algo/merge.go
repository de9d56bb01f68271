package algo

import "context"

// Merge is a top-down merge sort. Ties take the left run first, so equal
// values keep their input order.
func Merge(ctx context.Context, r *Run) error {
	return mergeSort(ctx, r, 0, r.Len()-1)
}

func mergeSort(ctx context.Context, r *Run, left, right int) error {
	if left >= right {
		return nil
	}

	mid := (left + right) / 2
	if err := mergeSort(ctx, r, left, mid); err != nil {
		return err
	}
	if err := mergeSort(ctx, r, mid+1, right); err != nil {
		return err
	}
	return merge(ctx, r, left, mid, right)
}

func merge(ctx context.Context, r *Run, left, mid, right int) (err error) {
	lbuf := make([]int, mid-left+1)
	rbuf := make([]int, right-mid)
	for x := range lbuf {
		lbuf[x] = r.At(left + x)
	}
	for x := range rbuf {
		rbuf[x] = r.At(mid + 1 + x)
	}

	i, j, k := 0, 0, left

	// On cancellation the unwritten tail of both buffers goes back into
	// [k, right] so no element is lost or duplicated.
	defer func() {
		if err == nil {
			return
		}
		for ; i < len(lbuf); i++ {
			r.put(k, lbuf[i])
			k++
		}
		for ; j < len(rbuf); j++ {
			r.put(k, rbuf[j])
			k++
		}
	}()

	for i < len(lbuf) && j < len(rbuf) {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := r.Compare(ctx, lbuf[i], rbuf[j], "Merging sorted subarrays", k)
		if err != nil {
			return err
		}

		var v int
		if c <= 0 {
			v = lbuf[i]
			i++
		} else {
			v = rbuf[j]
			j++
		}
		err = r.Overwrite(ctx, k, v, "Merging sorted subarrays")
		k++
		if err != nil {
			return err
		}
	}

	for i < len(lbuf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		v := lbuf[i]
		i++
		err := r.Overwrite(ctx, k, v, "Copying remaining elements from left subarray")
		k++
		if err != nil {
			return err
		}
	}

	for j < len(rbuf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		v := rbuf[j]
		j++
		err := r.Overwrite(ctx, k, v, "Copying remaining elements from right subarray")
		k++
		if err != nil {
			return err
		}
	}
	return nil
}
