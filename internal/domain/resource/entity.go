package resource

import (
	"strings"

	"boat-scheduler/internal/pkg/errs"
)

var (
	ErrEmptyResourceID     = errs.Validation("resource id cannot be empty")
	ErrEmptyResourceName   = errs.Validation("resource name cannot be empty")
	ErrResourceNameTooLong = errs.Validation("resource name is too long (max 255 characters)")
	ErrInvalidCapacity     = errs.Validation("invalid capacity class")
)

const (
	MaxResourceNameLength = 255
	DefaultColor          = "#1890ff"
)

type ID string

func (id ID) String() string { return string(id) }

// Capacity decides whether a resource is booked whole or sold per passenger.
type Capacity string

const (
	CapacitySingle Capacity = "single"
	CapacityGroup  Capacity = "group"
)

func (c Capacity) String() string {
	return string(c)
}

func (c Capacity) IsValid() bool {
	switch c {
	case CapacitySingle, CapacityGroup:
		return true
	default:
		return false
	}
}

func ParseCapacity(s string) (Capacity, error) {
	c := Capacity(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCapacity
	}
	return c, nil
}

type Resource struct {
	id       ID
	name     string
	groupID  string
	capacity Capacity
	color    string
}

func NewResource(id ID, name, groupID string, capacity Capacity, color string) (*Resource, error) {
	if strings.TrimSpace(string(id)) == "" {
		return nil, ErrEmptyResourceID
	}

	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	if !capacity.IsValid() {
		return nil, ErrInvalidCapacity
	}

	if color == "" {
		color = DefaultColor
	}

	return &Resource{
		id:       id,
		name:     strings.TrimSpace(name),
		groupID:  groupID,
		capacity: capacity,
		color:    color,
	}, nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() ID             { return r.id }
func (r *Resource) Name() string       { return r.name }
func (r *Resource) GroupID() string    { return r.groupID }
func (r *Resource) Capacity() Capacity { return r.capacity }
func (r *Resource) Color() string      { return r.color }
