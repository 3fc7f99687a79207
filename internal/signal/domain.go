package signal

// Domain selects the independent variable of a signal: continuous real
// time t or discrete integer index n.
type Domain string

const (
	Continuous Domain = "continuous"
	Discrete   Domain = "discrete"
)

// Variable returns the free-variable name used in expressions for the domain.
func (d Domain) Variable() string {
	if d == Discrete {
		return "n"
	}
	return "t"
}

func (d Domain) Valid() bool {
	return d == Continuous || d == Discrete
}
