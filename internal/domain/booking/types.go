package booking

import (
	"strconv"
	"strings"
)

// ID is assigned by the schedule as max existing + 1, so valid ids start at 1.
type ID int

const NoID ID = 0

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

type PassengerID string

func (id PassengerID) String() string {
	return string(id)
}

// Number parses the leading digits after the "p" prefix; "p12" and "p12-3" both yield 12.
func (id PassengerID) Number() int {
	digits := strings.TrimPrefix(string(id), "p")
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0
	}
	return n
}

func NextPassengerID(passengers []*Passenger) PassengerID {
	highest := 0
	for _, p := range passengers {
		if n := p.ID().Number(); n > highest {
			highest = n
		}
	}
	return PassengerID("p" + strconv.Itoa(highest+1))
}

const (
	RefundedColor  = "#d9d9d9"
	refundedPrefix = "[REFUNDED] "
	titleSeparator = " - "
)

// HeadCountTitle builds "<prefix> - <n> ppl".
func HeadCountTitle(prefix string, headCount int) string {
	return prefix + titleSeparator + strconv.Itoa(headCount) + " ppl"
}

func titlePrefix(title string) string {
	prefix, _, _ := strings.Cut(title, titleSeparator)
	return prefix
}

func refundedTitle(title string) string {
	return refundedPrefix + strings.TrimPrefix(title, refundedPrefix)
}
