package captain

// ArgMarshaler enables arguments to have custom value types
type ArgMarshaler interface {
	Set(string) error
}

// Argument is used to define positional arguments in our Command struct
type Argument struct {
	Name        string
	Description string
	Required    bool
	Value       interface{}
}
