package canonical

//componentgen:component name=auditor service=example.com/canonical.Auditor property=rank=1
type Auditor struct{}

//componentgen:onevent
func (a *Auditor) OnUser(u User) {
	_ = u
}

//componentgen:onevent
func (a *Auditor) OnAddress(addr Address) {
	_ = addr
}

func (a *Auditor) Reset() {}
