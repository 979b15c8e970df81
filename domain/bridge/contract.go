package bridge

import "strings"

// Status is how far a contract has been doubled: Undoubled < Doubled < Redoubled.
type Status uint8

const (
	Undoubled Status = iota
	Doubled
	Redoubled
)

func (s Status) String() string {
	switch s {
	case Undoubled:
		return "Undoubled"
	case Doubled:
		return "Doubled"
	case Redoubled:
		return "Redoubled"
	default:
		return "Status(?)"
	}
}

// suffix is the shorthand appended to a contract bid, as in "4Sx".
func (s Status) suffix() string {
	switch s {
	case Doubled:
		return "x"
	case Redoubled:
		return "xx"
	default:
		return ""
	}
}

// Contract is the outcome of a closed auction: the final bid and whether it
// was doubled or redoubled.
type Contract struct {
	Bid    ContractBid
	Status Status
}

// ContractOf builds an undoubled contract for bid.
func ContractOf(bid ContractBid) Contract {
	return Contract{Bid: bid, Status: Undoubled}
}

// ParseContract reads the shorthand form "3Hxx" or "4 diamond x x". Whitespace
// is dropped, then up to two trailing x set the status and the rest is parsed
// as a contract bid.
func ParseContract(s string) (Contract, error) {
	massaged := stripSpace(strings.ToLower(s))
	status := Undoubled

	if len(massaged) == 0 {
		return Contract{}, TooShort
	}
	if massaged[len(massaged)-1] == 'x' {
		status = Doubled
		massaged = massaged[:len(massaged)-1]
		if len(massaged) == 0 {
			return Contract{}, TooShort
		}
		if massaged[len(massaged)-1] == 'x' {
			status = Redoubled
			massaged = massaged[:len(massaged)-1]
		}
	}

	bid, err := ParseContractBid(massaged)
	if err != nil {
		return Contract{}, err
	}
	return Contract{Bid: bid, Status: status}, nil
}

// String renders the bid followed by "x" or "xx", e.g. "3NTx".
func (c Contract) String() string {
	return c.Bid.String() + c.Status.suffix()
}

func (c Contract) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Contract) UnmarshalText(text []byte) error {
	contract, err := ParseContract(string(text))
	if err != nil {
		return err
	}
	*c = contract
	return nil
}
