package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLocation    = errors.New("car location is required")
	ErrNonPositivePrice = errors.New("daily price must be positive")
)

// Car is a rental listing owned by a dealer. The availability flag is
// owner-controlled and independent of existing bookings; it gates new
// bookings only.
type Car struct {
	id               uuid.UUID
	ownerID          uuid.UUID
	makeName         string
	model            string
	year             int
	location         string
	pricePerDayCents int64
	available        bool
	description      string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCar(ownerID uuid.UUID, makeName, model string, year int, location string, pricePerDayCents int64, description string) (*Car, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if pricePerDayCents <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Car{
		id:               uuid.New(),
		ownerID:          ownerID,
		makeName:         strings.TrimSpace(makeName),
		model:            strings.TrimSpace(model),
		year:             year,
		location:         location,
		pricePerDayCents: pricePerDayCents,
		available:        true,
		description:      description,
	}, nil
}

func ReconstructCar(
	id, ownerID uuid.UUID,
	makeName, model string,
	year int,
	location string,
	pricePerDayCents int64,
	available bool,
	description string,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:               id,
		ownerID:          ownerID,
		makeName:         makeName,
		model:            model,
		year:             year,
		location:         location,
		pricePerDayCents: pricePerDayCents,
		available:        available,
		description:      description,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (c *Car) OwnedBy(userID uuid.UUID) bool {
	return c.ownerID == userID
}

func (c *Car) ID() uuid.UUID           { return c.id }
func (c *Car) OwnerID() uuid.UUID      { return c.ownerID }
func (c *Car) Make() string            { return c.makeName }
func (c *Car) Model() string           { return c.model }
func (c *Car) Year() int               { return c.year }
func (c *Car) Location() string        { return c.location }
func (c *Car) PricePerDayCents() int64 { return c.pricePerDayCents }
func (c *Car) Available() bool         { return c.available }
func (c *Car) Description() string     { return c.description }
func (c *Car) CreatedAt() time.Time    { return c.createdAt }
func (c *Car) UpdatedAt() time.Time    { return c.updatedAt }
