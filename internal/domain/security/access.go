package security

// AccessLevel is the effective permission on a field. Levels are ordered so
// the most permissive of several grants can be taken with Max.
type AccessLevel int

const (
	AccessNone AccessLevel = iota
	AccessRead
	AccessReadWrite
)

func (a AccessLevel) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessReadWrite:
		return "read-write"
	default:
		return "none"
	}
}

// Max returns the more permissive of two levels.
func (a AccessLevel) Max(other AccessLevel) AccessLevel {
	if other > a {
		return other
	}
	return a
}
