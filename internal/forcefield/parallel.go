package forcefield

import "sync"

// ComputeCenters evaluates fn once per center atom, partitioning the centers
// over workers. Each worker accumulates into a private Accumulator shaped
// like acc; the partial energies, gradients and virials are reduced into acc
// after all workers finish. This is the safe parallel decomposition for the
// shared read-add-write accumulators: no locking in the inner loop.
//
// With workers <= 1 (or few centers) the evaluation runs serially on acc.
func ComputeCenters(natom, workers int, acc *Accumulator, fn func(center int, acc *Accumulator) (float64, error)) (float64, error) {
	const minChunk = 16

	if workers <= 1 || natom <= minChunk {
		energy := 0.0
		for i := 0; i < natom; i++ {
			e, err := fn(i, acc)
			if err != nil {
				return 0, err
			}
			energy += e
		}
		return energy, nil
	}

	if natom/minChunk < workers {
		workers = natom / minChunk
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (natom + workers - 1) / workers

	partials := make([]*Accumulator, workers)
	energies := make([]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > natom {
			end = natom
		}
		partials[w] = acc.clone()

		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				e, err := fn(i, partials[w])
				if err != nil {
					errs[w] = err
					return
				}
				energies[w] += e
			}
		}(w, start, end)
	}
	wg.Wait()

	energy := 0.0
	for w := 0; w < workers; w++ {
		if errs[w] != nil {
			return 0, errs[w]
		}
		if err := acc.Merge(partials[w]); err != nil {
			return 0, err
		}
		energy += energies[w]
	}
	return energy, nil
}
