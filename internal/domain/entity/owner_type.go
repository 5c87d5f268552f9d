// Package entity contains the core business objects of the project.
package entity

// OwnerType represents the type of profile that can own an address.
type OwnerType string

const (
	// OwnerTypeDonorProfile indicates the address belongs to a donor profile.
	OwnerTypeDonorProfile OwnerType = "donor_profile"
	// OwnerTypeNgoProfile indicates the address belongs to an NGO profile.
	OwnerTypeNgoProfile OwnerType = "ngo_profile"
)

// String returns the string representation of the OwnerType.
func (o OwnerType) String() string {
	return string(o)
}

// IsValid checks if the OwnerType is a valid value.
func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeDonorProfile, OwnerTypeNgoProfile:
		return true
	default:
		return false
	}
}
