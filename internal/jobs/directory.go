package jobs

import "github.com/openpvr/pvrfs/internal/directory"

// DirectoryQueue adapts a Queue to the directory package's JobQueue
// interface.
type DirectoryQueue struct {
	q *Queue
}

func NewDirectoryQueue(q *Queue) DirectoryQueue {
	return DirectoryQueue{q: q}
}

func (d DirectoryQueue) Submit(job directory.Job) {
	d.q.Submit(job)
}
