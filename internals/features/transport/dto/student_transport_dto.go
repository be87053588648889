// file: internals/features/transport/dto/student_transport_dto.go
package dto

import (
	"github.com/google/uuid"

	financeModel "schooltrans_backend/internals/features/finance/fees/model"
	"schooltrans_backend/internals/features/transport/model"
)

/* =========================================================
   ASSIGN (the core workflow input)
   ========================================================= */

type AssignStudentTransportRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	RouteID       uuid.UUID `json:"route_id" validate:"required"`
	PickupPointID uuid.UUID `json:"pickup_point_id" validate:"required"`

	// Lenient date strings: full timestamp or date-only (midnight UTC);
	// unparseable values fall back to defaults.
	ValidFrom *string `json:"valid_from"`
	ValidTo   *string `json:"valid_to"`

	Shift     *string    `json:"shift" validate:"omitempty,oneof=morning evening both"`
	CreatedBy *uuid.UUID `json:"created_by"`
}

func (r *AssignStudentTransportRequest) Normalize() {
	trimPtr(&r.Shift)
}

// AssignStudentTransportResponse is the 201 payload: the new assignment and
// the billing line generated for the current month (nil when the month was
// already billed).
type AssignStudentTransportResponse struct {
	Assignment    model.StudentTransportAssignment   `json:"assignment"`
	FeeAssignment *financeModel.StudentFeeAssignment `json:"fee_assignment"`
}

/* =========================================================
   UPDATE (mutable fields only)
   ========================================================= */

type UpdateStudentTransportRequest struct {
	PickupPointID *uuid.UUID `json:"pickup_point_id"`
	Shift         *string    `json:"shift" validate:"omitempty,oneof=morning evening both"`
	ValidTo       *string    `json:"valid_to"`
}

func (r *UpdateStudentTransportRequest) Normalize() {
	trimPtr(&r.Shift)
}

/* =========================================================
   STUDENT SEARCH (typeahead)
   ========================================================= */

type StudentSearchResult struct {
	ID              uuid.UUID `json:"id"`
	AdmissionNumber string    `json:"admission_number"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Class           string    `json:"class"`
	Section         *string   `json:"section,omitempty"`
	RollNumber      *string   `json:"roll_number,omitempty"`
}
