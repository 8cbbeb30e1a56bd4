package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

const (
	DonorCollection  = "donor"
	DefaultDonorRole = "Donor"
)

// DonorInput is the body of POST /api/donors. Only the coordinates may be null.
type DonorInput struct {
	FullName   Field[string]  `json:"full_name" validate:"required"`
	Phone      Field[string]  `json:"phone" validate:"required"`
	BloodGroup Field[string]  `json:"blood_group" validate:"required"`
	Age        Field[int]     `json:"age" validate:"required,gte=18,lte=80"`
	City       Field[string]  `json:"city" validate:"required"`
	Latitude   Field[float64] `json:"latitude" nullable:"true" validate:"omitempty"`
	Longitude  Field[float64] `json:"longitude" nullable:"true" validate:"omitempty"`
	Password   Field[string]  `json:"password" validate:"required"`
	Role       Field[string]  `json:"role" validate:"omitempty"`
	Verified   Field[bool]    `json:"verified" validate:"omitempty"`
}

// Donor is a registered blood donor as stored in the "donor" collection.
//
// Password is kept in plain text. This is a known gap, not a contract.
type Donor struct {
	FullName   string
	Phone      string
	BloodGroup string
	Age        int
	City       string
	Latitude   *float64
	Longitude  *float64
	Password   string
	Role       string
	Verified   bool
}

// Donor applies defaults to a validated input: role first, then verified.
// A default is used only when the field was absent from the body.
func (in DonorInput) Donor() Donor {
	return Donor{
		FullName:   in.FullName.Value,
		Phone:      in.Phone.Value,
		BloodGroup: in.BloodGroup.Value,
		Age:        in.Age.Value,
		City:       in.City.Value,
		Latitude:   in.Latitude.Ptr(),
		Longitude:  in.Longitude.Ptr(),
		Password:   in.Password.Value,
		Role:       in.Role.Or(DefaultDonorRole),
		Verified:   in.Verified.Or(false),
	}
}

// Document is the stored form of the donor.
func (d Donor) Document() bson.M {
	return bson.M{
		"full_name":   d.FullName,
		"phone":       d.Phone,
		"blood_group": d.BloodGroup,
		"age":         d.Age,
		"city":        d.City,
		"latitude":    optional(d.Latitude),
		"longitude":   optional(d.Longitude),
		"password":    d.Password,
		"role":        d.Role,
		"verified":    d.Verified,
	}
}

// DonorSummary is the reduced view returned by donor search. Fields missing
// from the stored document are null.
type DonorSummary struct {
	ID         string  `json:"id"`
	FullName   *string `json:"full_name"`
	BloodGroup *string `json:"blood_group"`
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
}

func optional(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
