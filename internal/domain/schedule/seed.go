package schedule

import (
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/resource"
)

type boatSeed struct {
	id       resource.ID
	name     string
	group    string
	capacity resource.Capacity
	color    string
}

var demoFleet = []boatSeed{
	{"small-1", "Small Boat 1 (2 hrs)", "small-boats", resource.CapacitySingle, "#FF6B6B"},
	{"small-2", "Small Boat 2 (2 hrs)", "small-boats", resource.CapacitySingle, "#FFE66D"},
	{"big-1", "Big Boat 1 (10 ppl)", "big-boats", resource.CapacityGroup, "#4ECDC4"},
	{"big-2", "Big Boat 2 (12 ppl)", "big-boats", resource.CapacityGroup, "#95E1D3"},
}

// DemoFleet returns the two small and two big boats the desk operates.
func DemoFleet() ([]*resource.Resource, error) {
	fleet := make([]*resource.Resource, 0, len(demoFleet))
	for _, s := range demoFleet {
		r, err := resource.NewResource(s.id, s.name, s.group, s.capacity, s.color)
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, r)
	}
	return fleet, nil
}

type guestSeed struct {
	id        booking.PassengerID
	name      string
	checkedIn bool
	phone     string
	email     string
	addOns    []string
	special   string
	price     int64
	headCount int
}

type bookingSeed struct {
	id       booking.ID
	title    string
	day      int
	from, to [2]int
	boat     resource.ID
	color    string
	guests   []guestSeed
}

var demoBookings = []bookingSeed{
	{id: 1, title: "John Smith - 2hrs", day: 1, from: [2]int{9, 0}, to: [2]int{11, 0}, boat: "small-1", color: "#FF6B6B"},
	{id: 2, title: "Group Outing - 8 ppl", day: 1, from: [2]int{10, 0}, to: [2]int{13, 0}, boat: "big-1", color: "#4ECDC4", guests: []guestSeed{
		{"p1", "Alice Johnson", true, "+1 (555) 111-2222", "alice@example.com", []string{"Life Jacket", "Snacks"}, "Vegetarian meal", 4500, 1},
		{"p2", "Bob Wilson", true, "+1 (555) 222-3333", "bob@example.com", []string{"Camera Rental"}, "None", 5000, 2},
		{"p3", "Carol Davis", false, "+1 (555) 333-4444", "carol@example.com", nil, "Wheelchair accessible", 4500, 1},
		{"p4", "David Miller", true, "+1 (555) 444-5555", "david@example.com", []string{"Drinks Package"}, "None", 5500, 1},
		{"p5", "Emma Taylor", false, "+1 (555) 555-6666", "emma@example.com", []string{"Life Jacket", "Drinks Package"}, "Allergy: Shellfish", 7000, 1},
		{"p6", "Frank Anderson", true, "+1 (555) 666-7777", "frank@example.com", nil, "None", 4500, 1},
		{"p7", "Grace Lee", true, "+1 (555) 777-8888", "grace@example.com", []string{"Snacks", "Photography"}, "Birthday celebration", 6500, 3},
		{"p8", "Henry Brown", false, "+1 (555) 888-9999", "henry@example.com", []string{"Camera Rental"}, "None", 5000, 1},
	}},
	{id: 3, title: "Maria Garcia - 2hrs", day: 1, from: [2]int{13, 0}, to: [2]int{15, 0}, boat: "small-2", color: "#FFE66D"},
	{id: 4, title: "Corporate Event - 10 ppl", day: 2, from: [2]int{9, 0}, to: [2]int{12, 30}, boat: "big-2", color: "#95E1D3", guests: []guestSeed{
		{"p1", "John Executive", true, "+1 (555) 100-1111", "john@company.com", []string{"Drinks Package"}, "VIP seating", 7500, 1},
		{"p2", "Sarah Manager", true, "+1 (555) 200-2222", "sarah@company.com", nil, "None", 6500, 1},
		{"p3", "Tom Developer", false, "+1 (555) 300-3333", "tom@company.com", []string{"Camera Rental"}, "Professional photography", 8000, 1},
		{"p4", "Lisa Designer", true, "+1 (555) 400-4444", "lisa@company.com", []string{"Snacks"}, "None", 6000, 1},
		{"p5", "Mike Engineer", true, "+1 (555) 500-5555", "mike@company.com", nil, "None", 6500, 2},
		{"p6", "Jenny Analyst", false, "+1 (555) 600-6666", "jenny@company.com", []string{"Life Jacket", "Drinks Package"}, "Gluten-free meal", 8000, 1},
		{"p7", "Chris Sales", true, "+1 (555) 700-7777", "chris@company.com", []string{"Photography"}, "None", 7000, 1},
		{"p8", "Rachel HR", true, "+1 (555) 800-8888", "rachel@company.com", nil, "None", 6500, 1},
		{"p9", "Paul IT", false, "+1 (555) 900-9999", "paul@company.com", []string{"Drinks Package", "Snacks"}, "None", 7500, 1},
		{"p10", "Susan Marketing", true, "+1 (555) 910-1010", "susan@company.com", nil, "Early boarding", 6500, 1},
	}},
	{id: 5, title: "Sarah Chen - 3hrs", day: 2, from: [2]int{14, 0}, to: [2]int{17, 0}, boat: "small-1", color: "#F38181"},
	{id: 6, title: "Family Trip - 6 ppl", day: 3, from: [2]int{10, 0}, to: [2]int{13, 0}, boat: "big-1", color: "#AA96DA", guests: []guestSeed{
		{"p1", "John Family", true, "+1 (555) 001-2222", "john.family@example.com", []string{"Life Jacket"}, "None", 6000, 1},
		{"p2", "Mary Family", true, "+1 (555) 001-3333", "mary.family@example.com", nil, "None", 5500, 1},
		{"p3", "Tommy Family", true, "+1 (555) 001-4444", "tommy@example.com", []string{"Life Jacket", "Snacks"}, "Children meal", 5000, 1},
		{"p4", "Lucy Family", false, "+1 (555) 001-5555", "lucy@example.com", []string{"Life Jacket"}, "None", 5000, 1},
		{"p5", "Grandpa", true, "+1 (555) 001-6666", "grandpa@example.com", []string{"Wheelchair accessible"}, "Mobility assistance", 6500, 1},
		{"p6", "Grandma", true, "+1 (555) 001-7777", "grandma@example.com", nil, "None", 5500, 1},
	}},
	{id: 7, title: "Michael Brown - 2hrs", day: 3, from: [2]int{15, 0}, to: [2]int{17, 0}, boat: "small-2", color: "#FCBAD3"},
	{id: 8, title: "Wedding Party - 12 ppl", day: 5, from: [2]int{11, 0}, to: [2]int{14, 30}, boat: "big-2", color: "#A8D8EA", guests: []guestSeed{
		{"p1", "Bride", true, "+1 (555) 500-1000", "bride@example.com", []string{"Premium Drinks", "Photography", "Special Cake"}, "Wedding ceremony", 15000, 1},
		{"p2", "Groom", true, "+1 (555) 500-2000", "groom@example.com", []string{"Premium Drinks", "Photography"}, "None", 15000, 1},
		{"p3", "Best Man", true, "+1 (555) 500-3000", "bestman@example.com", []string{"Drinks Package"}, "None", 8000, 1},
		{"p4", "Maid of Honor", false, "+1 (555) 500-4000", "maidofhonor@example.com", []string{"Drinks Package"}, "Vegetarian meal", 8000, 1},
		{"p5", "Guest 1", true, "+1 (555) 500-5000", "guest1@example.com", nil, "None", 7000, 1},
		{"p6", "Guest 2", true, "+1 (555) 500-6000", "guest2@example.com", []string{"Drinks Package"}, "None", 8000, 1},
		{"p7", "Guest 3", true, "+1 (555) 500-7000", "guest3@example.com", nil, "None", 7000, 1},
		{"p8", "Guest 4", false, "+1 (555) 500-8000", "guest4@example.com", []string{"Life Jacket"}, "Non-swimmer", 7500, 2},
		{"p9", "Guest 5", true, "+1 (555) 500-9000", "guest5@example.com", nil, "None", 7000, 1},
		{"p10", "Guest 6", true, "+1 (555) 500-1001", "guest6@example.com", []string{"Drinks Package"}, "None", 8000, 1},
		{"p11", "Guest 7", false, "+1 (555) 500-1002", "guest7@example.com", []string{"Life Jacket"}, "Mobility support", 7500, 1},
		{"p12", "Guest 8", true, "+1 (555) 500-1003", "guest8@example.com", nil, "None", 7000, 1},
	}},
	{id: 9, title: "Emma Wilson - 2hrs", day: 5, from: [2]int{16, 0}, to: [2]int{18, 0}, boat: "small-1", color: "#FF9999"},
	{id: 10, title: "Morning Rental - 2hrs", day: 1, from: [2]int{12, 0}, to: [2]int{14, 0}, boat: "small-1", color: "#9B59B6"},
	{id: 11, title: "Afternoon Rental - 2hrs", day: 1, from: [2]int{15, 0}, to: [2]int{17, 0}, boat: "small-1", color: "#3498DB"},
	{id: 12, title: "Evening Cruise - 2hrs", day: 1, from: [2]int{18, 0}, to: [2]int{20, 0}, boat: "small-1", color: "#E74C3C"},
	{id: 13, title: "Afternoon Tour - 4 ppl", day: 1, from: [2]int{14, 0}, to: [2]int{17, 0}, boat: "big-1", color: "#F39C12", guests: []guestSeed{
		{"p1", "Alex Brown", false, "+1 (555) 700-1000", "alex@example.com", []string{"Life Jacket"}, "None", 6000, 1},
		{"p2", "Beth Green", false, "+1 (555) 700-2000", "beth@example.com", nil, "None", 5500, 1},
		{"p3", "Charlie White", false, "+1 (555) 700-3000", "charlie@example.com", []string{"Drinks Package"}, "None", 6500, 1},
		{"p4", "Diana Black", false, "+1 (555) 700-4000", "diana@example.com", nil, "None", 5500, 1},
	}},
}

// DemoStore builds the first-week-of-January 2026 schedule in loc. Group titles are
// recomputed from the passenger head-counts.
func DemoStore(loc *time.Location) (*Store, error) {
	if loc == nil {
		loc = time.UTC
	}
	fleet, err := DemoFleet()
	if err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, 0, len(demoBookings))
	for _, seed := range demoBookings {
		b, err := seed.build(loc)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return NewStore(fleet, bookings)
}

func (s bookingSeed) build(loc *time.Location) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(
		time.Date(2026, time.January, s.day, s.from[0], s.from[1], 0, 0, loc),
		time.Date(2026, time.January, s.day, s.to[0], s.to[1], 0, 0, loc),
	)
	if err != nil {
		return nil, err
	}
	draft := booking.Draft{
		ID:         s.id,
		Title:      s.title,
		Slot:       slot,
		ResourceID: s.boat,
		Color:      s.color,
	}
	if len(s.guests) == 0 {
		return booking.NewSingle(draft)
	}

	passengers := make([]*booking.Passenger, 0, len(s.guests))
	for _, g := range s.guests {
		p, err := booking.RestorePassenger(g.id, booking.PassengerDetails{
			Name:           g.name,
			Email:          g.email,
			Phone:          g.phone,
			HeadCount:      g.headCount,
			PriceCents:     g.price,
			AddOns:         g.addOns,
			SpecialRequest: g.special,
		}, g.checkedIn, nil)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return booking.NewGroup(draft, passengers)
}
