// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID           uuid.UUID     // The Global Unique Identifier (GUID) for the user.
	Email        string        // The user's primary contact email, also the login identifier.
	Name         string        // The user's display name or organization name.
	DonorProfile *DonorProfile // A pointer to the donor-specific profile. Nil if this account has no 'donor' role.
	NgoProfile   *NgoProfile   // A pointer to the NGO-specific profile. Nil if this account has no 'ngo' role.
	CreatedAt    time.Time     // Timestamp of when this user account was created.
	UpdatedAt    time.Time     // Timestamp of the last modification to this user's data.
}

// DonorProfile holds data specific to the "food donor" role.
type DonorProfile struct {
	UserID       uuid.UUID // Foreign Key that links this profile to a core User entity.
	OrgName      string    // The donor's business name (restaurant, caterer, etc.).
	FssaiLicense string    // The donor's food-safety license number.
	UpdatedAt    time.Time // Timestamp of the last modification to this profile.
}

// NgoProfile holds data specific to the "NGO" role.
type NgoProfile struct {
	UserID         uuid.UUID // Foreign Key that links this profile to a core User entity.
	RegisteredName string    // The NGO's officially registered name.
	LicenseNumber  string    // The NGO's registration/license number.
	ContactEmail   string    // Contact address that receives donation notifications and pickup codes.
	UpdatedAt      time.Time // Timestamp of the last modification to this profile.
}

// Roles returns the role set derived from the attached profiles.
func (u *User) Roles() Roles {
	var roles Roles
	if u.DonorProfile != nil {
		roles = append(roles, RoleDonor)
	}
	if u.NgoProfile != nil {
		roles = append(roles, RoleNgo)
	}

	return roles
}

// NotificationEmail returns the address donation notifications should go to.
// NGO profiles may carry a dedicated contact address; the account email is the fallback.
func (u *User) NotificationEmail() string {
	if u.NgoProfile != nil && u.NgoProfile.ContactEmail != "" {
		return u.NgoProfile.ContactEmail
	}

	return u.Email
}
