package ecs

// System is one unit of per-tick work a Scheduler runs.
type System interface {
	Execute(frame *UpdateFrame)
}
