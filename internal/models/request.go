package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

const (
	RequestCollection    = "request"
	DefaultRequestStatus = "Pending"
)

// BloodRequestInput is the body of POST /api/requests.
type BloodRequestInput struct {
	RequiredBloodGroup Field[string]  `json:"required_blood_group" validate:"required"`
	RequiredUnits      Field[int]     `json:"required_units" validate:"required,gte=1,lte=20"`
	HospitalName       Field[string]  `json:"hospital_name" validate:"required"`
	ContactName        Field[string]  `json:"contact_name" validate:"required"`
	ContactPhone       Field[string]  `json:"contact_phone" validate:"required"`
	City               Field[string]  `json:"city" validate:"required"`
	Latitude           Field[float64] `json:"latitude" nullable:"true" validate:"omitempty"`
	Longitude          Field[float64] `json:"longitude" nullable:"true" validate:"omitempty"`
	Status             Field[string]  `json:"status" validate:"omitempty"`
}

// BloodRequest is a hospital's call for blood. Status is free-form and
// never changed after creation.
type BloodRequest struct {
	RequiredBloodGroup string
	RequiredUnits      int
	HospitalName       string
	ContactName        string
	ContactPhone       string
	City               string
	Latitude           *float64
	Longitude          *float64
	Status             string
}

func (in BloodRequestInput) BloodRequest() BloodRequest {
	return BloodRequest{
		RequiredBloodGroup: in.RequiredBloodGroup.Value,
		RequiredUnits:      in.RequiredUnits.Value,
		HospitalName:       in.HospitalName.Value,
		ContactName:        in.ContactName.Value,
		ContactPhone:       in.ContactPhone.Value,
		City:               in.City.Value,
		Latitude:           in.Latitude.Ptr(),
		Longitude:          in.Longitude.Ptr(),
		Status:             in.Status.Or(DefaultRequestStatus),
	}
}

func (r BloodRequest) Document() bson.M {
	return bson.M{
		"required_blood_group": r.RequiredBloodGroup,
		"required_units":       r.RequiredUnits,
		"hospital_name":        r.HospitalName,
		"contact_name":         r.ContactName,
		"contact_phone":        r.ContactPhone,
		"city":                 r.City,
		"latitude":             optional(r.Latitude),
		"longitude":            optional(r.Longitude),
		"status":               r.Status,
	}
}
