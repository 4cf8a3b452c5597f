package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// AdmissionToResponse converts an Admission entity to its DTO
func AdmissionToResponse(admission *entity.Admission) *dto.AdmissionResponse {
	if admission == nil {
		return nil
	}

	return &dto.AdmissionResponse{
		ID:           admission.ID,
		PatientID:    admission.PatientID,
		PatientName:  admission.Patient.User.FullName,
		Ward:         admission.Ward,
		BedNumber:    admission.BedNumber,
		AdmittedAt:   admission.AdmittedAt,
		DischargedAt: admission.DischargedAt,
		Status:       string(admission.Status),
	}
}

// AdmissionsToResponses converts a slice of Admission entities to DTOs
func AdmissionsToResponses(admissions []entity.Admission) []dto.AdmissionResponse {
	responses := make([]dto.AdmissionResponse, len(admissions))
	for i, admission := range admissions {
		resp := AdmissionToResponse(&admission)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
