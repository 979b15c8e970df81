package bridge

// ParseError is the closed set of conditions reported when text cannot be
// turned into a bridge value. Parsers return the lowest-level cause as is, so
// callers can match it with errors.Is or a plain comparison.
type ParseError uint8

const (
	BidLevelOutOfBounds ParseError = iota
	TooShort
	TooLong
	BidLevelNotAnInteger
	SuitNotValid
	RankNotValid
	SeatNotValid
)

func (e ParseError) Error() string {
	switch e {
	case BidLevelOutOfBounds:
		return "bid level must be between 1 and 7, inclusive"
	case TooShort:
		return "input too short"
	case TooLong:
		return "input too long"
	case BidLevelNotAnInteger:
		return "bid level is not an integer"
	case SuitNotValid:
		return "suit not valid"
	case RankNotValid:
		return "rank not valid"
	case SeatNotValid:
		return "seat not valid"
	default:
		return "unknown parse error"
	}
}
