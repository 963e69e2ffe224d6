package stray

type Ping struct {
	ID string
}

// Monitor carries no component directive; its handler must be rejected.
type Monitor struct{}

//componentgen:onevent
func (m *Monitor) OnPing(p Ping) {
	_ = p
}
