package ecs

// UpdateFrame is handed to every System on a Scheduler tick.
type UpdateFrame struct {
	DeltaTime float64
	World     *World
	Commands  *Commands
}
