package component

// PlayerComponent marks the locally controlled entity
type PlayerComponent struct {
	Name string
}
