package bridge

import "strings"

// Seat is a position at the table. Seats rotate clockwise North, East, South,
// West and back to North.
type Seat uint8

const (
	North Seat = 0
	East  Seat = 1
	South Seat = 2
	West  Seat = 3
)

const seatCount = 4

// Seats returns the four seats in rotation order starting from North.
func Seats() []Seat {
	return []Seat{North, East, South, West}
}

// ParseSeat accepts a seat's name or initial, ignoring case and surrounding
// whitespace.
func ParseSeat(s string) (Seat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return 0, SeatNotValid
}

// Add returns the seat n positions clockwise.
func (s Seat) Add(n int) Seat {
	return seatMod(int(s) + n)
}

// Sub returns the seat n positions counter-clockwise.
func (s Seat) Sub(n int) Seat {
	return seatMod(int(s) - n)
}

// Distance returns the number of clockwise steps, 0 to 3, needed to get from
// other to s. It is not symmetric: for distinct seats
// s.Distance(o) + o.Distance(s) == 4.
func (s Seat) Distance(other Seat) int {
	return int(seatMod(int(s) - int(other)))
}

// seatMod reduces any integer onto the four seats. Go's % keeps the sign of
// the dividend, so negative offsets are shifted back into range.
func seatMod(n int) Seat {
	m := n % seatCount
	if m < 0 {
		m += seatCount
	}
	return Seat(m)
}

func (s Seat) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Seat(?)"
	}
}

// Short returns the seat initial used in table headers.
func (s Seat) Short() string {
	return s.String()[:1]
}

func (s Seat) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Seat) UnmarshalText(text []byte) error {
	seat, err := ParseSeat(string(text))
	if err != nil {
		return err
	}
	*s = seat
	return nil
}
