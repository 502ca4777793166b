package dto

import "github.com/almukhtar-edu/sitestore/internal/models"

// EnrollmentDraft is the payload accepted from the public enrollment
// form. The store assigns id, createdAt and the initial pending status.
type EnrollmentDraft struct {
	StudentName    string `json:"studentName" validate:"required,max=128"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required,max=32"`
	Gender         string `json:"gender" validate:"required,max=16"`
	Grade          string `json:"grade" validate:"required,max=64"`
	ParentName     string `json:"parentName" validate:"required,max=128"`
	Email          string `json:"email" validate:"required,email,max=160"`
	Phone          string `json:"phone" validate:"required,max=32"`
	Address        string `json:"address" validate:"required,max=256"`
	PreviousSchool string `json:"previousSchool" validate:"max=128"`
	Message        string `json:"message" validate:"max=2000"`
	AgreeToTerms   bool   `json:"agreeToTerms" validate:"eq=true"`
}

// Record converts the draft into an enrollment without generated fields.
func (d EnrollmentDraft) Record() models.Enrollment {
	return models.Enrollment{
		StudentName:    d.StudentName,
		DateOfBirth:    d.DateOfBirth,
		Gender:         d.Gender,
		Grade:          d.Grade,
		ParentName:     d.ParentName,
		Email:          d.Email,
		Phone:          d.Phone,
		Address:        d.Address,
		PreviousSchool: d.PreviousSchool,
		Message:        d.Message,
		AgreeToTerms:   d.AgreeToTerms,
	}
}

// EnrollmentPatch is a partial update applied by the admin surface.
// Nil fields are left untouched.
type EnrollmentPatch struct {
	StudentName     *string                  `json:"studentName,omitempty"`
	DateOfBirth     *string                  `json:"dateOfBirth,omitempty"`
	Gender          *string                  `json:"gender,omitempty"`
	Grade           *string                  `json:"grade,omitempty"`
	ParentName      *string                  `json:"parentName,omitempty"`
	Email           *string                  `json:"email,omitempty"`
	Phone           *string                  `json:"phone,omitempty"`
	Address         *string                  `json:"address,omitempty"`
	PreviousSchool  *string                  `json:"previousSchool,omitempty"`
	Message         *string                  `json:"message,omitempty"`
	Status          *models.EnrollmentStatus `json:"status,omitempty"`
	ResponseMessage *string                  `json:"responseMessage,omitempty"`
}

// Apply merges non-nil fields over the existing record.
func (p EnrollmentPatch) Apply(e *models.Enrollment) {
	if p.StudentName != nil {
		e.StudentName = *p.StudentName
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.Grade != nil {
		e.Grade = *p.Grade
	}
	if p.ParentName != nil {
		e.ParentName = *p.ParentName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	if p.PreviousSchool != nil {
		e.PreviousSchool = *p.PreviousSchool
	}
	if p.Message != nil {
		e.Message = *p.Message
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ResponseMessage != nil {
		e.ResponseMessage = *p.ResponseMessage
	}
}
