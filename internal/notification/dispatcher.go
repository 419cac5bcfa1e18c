package notification

import (
	"context"
	"log"
	"sync"
	"time"
)

type scheduleChangeTask struct {
	courseID   string
	courseName string
	dayOfWeek  string
}

// Dispatcher decouples notification fan-out from the request/response
// cycle: a handler enqueues a task after its transaction commits and
// responds immediately; a background goroutine performs the fan-out.
type Dispatcher struct {
	service Service
	tasks   chan scheduleChangeTask
	wg      sync.WaitGroup

	// timeout bounds each fan-out run.
	timeout time.Duration
}

// NewDispatcher starts the background worker. Call Stop to drain and
// shut it down.
func NewDispatcher(service Service) *Dispatcher {
	d := &Dispatcher{
		service: service,
		tasks:   make(chan scheduleChangeTask, 64),
		timeout: 30 * time.Second,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// EnqueueScheduleChange queues a timetable-change fan-out. It blocks
// only when the task buffer is full.
func (d *Dispatcher) EnqueueScheduleChange(courseID, courseName string, dayOfWeek string) {
	d.tasks <- scheduleChangeTask{
		courseID:   courseID,
		courseName: courseName,
		dayOfWeek:  dayOfWeek,
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for task := range d.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)

		report, err := d.service.NotifyScheduleChange(ctx, task.courseID, task.courseName, task.dayOfWeek)
		if err != nil {
			log.Printf("schedule change fan-out failed for course %s: %v", task.courseID, err)
		} else if report.Failed() {
			for _, f := range report.Failures {
				log.Printf("notification delivery failed for recipient %s: %v", f.RecipientID, f.Err)
			}
		}

		cancel()
	}
}

// Stop drains queued tasks and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	close(d.tasks)
	d.wg.Wait()
}
