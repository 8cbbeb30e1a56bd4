package utils

import (
	"sync"
)

// Task is a unit of work run by RunParallel.
type Task func() error

// RunParallel executes all tasks concurrently and returns their errors in
// the order the tasks were given. It waits for every task to finish.
func RunParallel(tasks ...Task) []error {
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t Task) {
			defer wg.Done()
			errs[index] = t()
		}(i, task)
	}

	wg.Wait()
	return errs
}
