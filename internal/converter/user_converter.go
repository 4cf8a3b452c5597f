package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Includes the Profile if it is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		role = entity.RoleNameByID(user.RoleID)
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Profile != nil {
		response.Profile = ProfileToResponse(user.Profile)
	}

	return response
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		resp := UserToResponse(&user)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// ProfileToResponse converts a Profile entity to ProfileResponse DTO
func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.ProfileResponse{
		Phone:           profile.Phone,
		Gender:          profile.Gender,
		Address:         profile.Address,
		Specialization:  profile.Specialization,
		ConsultationFee: profile.ConsultationFee,
		UHID:            profile.UHID,
	}
	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// DoctorToResponse converts a doctor Profile to the public listing DTO
func DoctorToResponse(profile *entity.Profile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:              profile.UserID,
		FullName:        profile.User.FullName,
		Specialization:  profile.Specialization,
		ConsultationFee: profile.ConsultationFee,
	}
}

// DoctorsToResponses converts doctor Profiles to listing DTOs
func DoctorsToResponses(profiles []entity.Profile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
