package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// LabRequestToResponse converts a LabRequest entity to its DTO
func LabRequestToResponse(request *entity.LabRequest) *dto.LabRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.LabRequestResponse{
		ID:            request.ID,
		PatientID:     request.PatientID,
		PatientName:   request.Patient.User.FullName,
		AppointmentID: request.AppointmentID,
		TestName:      request.TestName,
		Status:        string(request.Status),
		Result:        request.Result,
		RequestedAt:   request.RequestedAt,
		CompletedAt:   request.CompletedAt,
	}
}

// LabRequestsToResponses converts a slice of LabRequest entities to DTOs
func LabRequestsToResponses(requests []entity.LabRequest) []dto.LabRequestResponse {
	responses := make([]dto.LabRequestResponse, len(requests))
	for i, request := range requests {
		resp := LabRequestToResponse(&request)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
