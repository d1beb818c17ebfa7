package operator

import "sync"

// task fans fn out over data across workersCount goroutines and waits for
// all of them. Per-edge operator work is embarrassingly parallel: each call
// reads the immutable input polytope and writes only its own result slot.
func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	if workersCount < 1 {
		workersCount = 1
	}

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
