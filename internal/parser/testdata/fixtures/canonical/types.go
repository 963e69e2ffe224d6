package canonical

//componentgen:dto
type Address struct {
	Street string
	City   string
}

//componentgen:dto
type User struct {
	Name  string
	Age   int
	Tags  []string
	Attrs map[string]any
	Home  Address
}

func NewUser() User {
	return User{}
}

func NewUserNamed(name string) User {
	return User{Name: name}
}

//componentgen:dto
type Billing struct {
	Address
	VAT string
}

// Plain type without a directive, must be ignored.
type Internal struct {
	secret string
}
