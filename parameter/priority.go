package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMovement = 10 // Input-driven movement, before anything reads positions
	PriorityRender   = 100
)
