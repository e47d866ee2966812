// Package orchestrator provides a bounded worker pool for running
// independent engine jobs in parallel.
//
// Clip normalization is embarrassingly parallel: each clip's job has no
// dependency on any other. The pool runs up to a fixed number of jobs
// concurrently and reports per-task completion through a progress
// callback. Result ordering is the caller's concern; completion order
// is nondeterministic.
package orchestrator

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"reelmaker/command"
	"reelmaker/models"
)

// TaskStatus represents the current state of a task.
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskRunning
	TaskCompleted
	TaskFailed
)

// Task represents a unit of work keyed by clip index.
type Task struct {
	Index     uint
	Command   command.Command
	Status    TaskStatus
	Error     error
	Result    *models.ClipResult
	StartTime time.Time
	EndTime   time.Time
}

// Pool executes tasks through a Runner with bounded concurrency.
type Pool struct {
	workers int
	runner  command.Runner

	tasksMutex sync.Mutex
	tasks      []*Task
	seen       map[uint]bool

	// Progress tracking
	onProgress func(completed, total int, task *Task)
}

// NewPool creates a pool with the given worker count. A count of zero
// or less means one worker per CPU.
func NewPool(workers int, runner command.Runner) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if runner == nil {
		runner = command.ExecRunner{}
	}
	return &Pool{
		workers: workers,
		runner:  runner,
		seen:    make(map[uint]bool),
	}
}

// AddTask queues a task for execution.
func (p *Pool) AddTask(task *Task) error {
	p.tasksMutex.Lock()
	defer p.tasksMutex.Unlock()

	if p.seen[task.Index] {
		return fmt.Errorf("task for clip %03d already exists", task.Index)
	}

	task.Status = TaskPending
	p.seen[task.Index] = true
	p.tasks = append(p.tasks, task)
	return nil
}

// SetProgressCallback sets a callback invoked after each task completes.
func (p *Pool) SetProgressCallback(callback func(completed, total int, task *Task)) {
	p.onProgress = callback
}

// Execute runs all queued tasks and blocks until every one has
// finished. It returns the per-task results (in submission order) and
// the first error encountered, if any task failed. All tasks run to
// completion even when one fails; the caller decides whether a failure
// aborts the run.
func (p *Pool) Execute() ([]*models.ClipResult, error) {
	p.tasksMutex.Lock()
	tasks := p.tasks
	p.tasksMutex.Unlock()

	total := len(tasks)
	if total == 0 {
		return nil, nil
	}

	taskCh := make(chan *Task)
	completed := 0

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				p.executeTask(task)

				p.tasksMutex.Lock()
				completed++
				if p.onProgress != nil {
					p.onProgress(completed, total, task)
				}
				p.tasksMutex.Unlock()
			}
		}()
	}

	for _, task := range tasks {
		taskCh <- task
	}
	close(taskCh)
	wg.Wait()

	results := make([]*models.ClipResult, 0, total)
	var firstErr error
	for _, task := range tasks {
		results = append(results, task.Result)
		if task.Error != nil && firstErr == nil {
			firstErr = fmt.Errorf("clip %03d: %w", task.Index, task.Error)
		}
	}

	return results, firstErr
}

// executeTask runs a single task through the runner.
func (p *Pool) executeTask(task *Task) {
	task.Status = TaskRunning
	task.StartTime = time.Now()

	err := p.runner.Run(task.Command)

	task.EndTime = time.Now()
	if err != nil {
		task.Status = TaskFailed
		task.Error = err
		task.Result = &models.ClipResult{
			Index:   task.Index,
			Success: false,
			Error:   err,
		}
		return
	}

	task.Status = TaskCompleted
	task.Result = &models.ClipResult{
		Index:      task.Index,
		OutputPath: task.Command.GetOutputPath(),
		Success:    true,
	}
}

// Stats returns a count of tasks by status.
func (p *Pool) Stats() map[string]int {
	p.tasksMutex.Lock()
	defer p.tasksMutex.Unlock()

	stats := map[string]int{
		"total":     len(p.tasks),
		"pending":   0,
		"running":   0,
		"completed": 0,
		"failed":    0,
	}

	for _, task := range p.tasks {
		switch task.Status {
		case TaskPending:
			stats["pending"]++
		case TaskRunning:
			stats["running"]++
		case TaskCompleted:
			stats["completed"]++
		case TaskFailed:
			stats["failed"]++
		}
	}

	return stats
}
