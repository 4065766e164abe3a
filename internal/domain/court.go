package domain

import "github.com/courtclub/court-booking-service/pkg/types"

// CourtStatus represents the operational status of a court
type CourtStatus string

const (
	CourtStatusActive      CourtStatus = "ACTIVE"
	CourtStatusMaintenance CourtStatus = "MAINTENANCE"
)

// Court is the read-only court record consumed from the court catalog.
// Invariant maintained by the catalog: OpeningTime < ClosingTime.
type Court struct {
	ID                  string
	Name                string
	Status              CourtStatus
	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	SlotDurationMinutes int
	BasePrice           float64
	MemberPrice         float64
}

// IsActive returns true if the court accepts reservations
func (c *Court) IsActive() bool {
	return c.Status == CourtStatusActive
}

// PriceFor returns the price charged to a user with the given role.
// Members pay the member price, every other role pays the base price.
func (c *Court) PriceFor(role Role) float64 {
	if role == RoleMember {
		return c.MemberPrice
	}
	return c.BasePrice
}
