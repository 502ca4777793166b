package models

import "time"

// EnrollmentStatus tracks the lifecycle of an admission application.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentApproved EnrollmentStatus = "approved"
	EnrollmentRejected EnrollmentStatus = "rejected"
)

// Valid reports whether the status is one of the known lifecycle values.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentPending, EnrollmentApproved, EnrollmentRejected:
		return true
	}
	return false
}

// Enrollment is an admission application submitted from the public site.
// New applications always start in the pending state; only admins move
// them to approved or rejected.
type Enrollment struct {
	ID              string           `json:"id"`
	StudentName     string           `json:"studentName"`
	DateOfBirth     string           `json:"dateOfBirth"`
	Gender          string           `json:"gender"`
	Grade           string           `json:"grade"`
	ParentName      string           `json:"parentName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	PreviousSchool  string           `json:"previousSchool"`
	Message         string           `json:"message"`
	AgreeToTerms    bool             `json:"agreeToTerms"`
	Status          EnrollmentStatus `json:"status"`
	ResponseMessage string           `json:"responseMessage,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty"`
}

// RecordID implements the record lookup contract.
func (e Enrollment) RecordID() string { return e.ID }
