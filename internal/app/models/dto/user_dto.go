package dto

import "github.com/campushq/placement/internal/app/models"

// UserResponse represents basic user information
type UserResponse struct {
	ID                    int64    `json:"id"`
	Username              string   `json:"username"`
	Name                  string   `json:"name"`
	Email                 string   `json:"email"`
	Year                  string   `json:"year"`
	Branch                string   `json:"branch"`
	Division              string   `json:"division"`
	PRN                   string   `json:"prn"`
	TenthPercentage       *float64 `json:"tenthPercentage,omitempty"`
	TwelfthPercentage     *float64 `json:"twelfthPercentage,omitempty"`
	EngineeringPercentage *float64 `json:"engineeringPercentage,omitempty"`
	ActiveBacklogs        *int     `json:"activeBacklogs,omitempty"`
	ResumeURL             string   `json:"resumeUrl,omitempty"`
	Role                  string   `json:"role"`
	ProfileComplete       bool     `json:"profileComplete"`
	Placed                bool     `json:"placed"`
}

// UpdateProfileRequest represents profile update data submitted as a
// multipart form so the resume file can travel with it
type UpdateProfileRequest struct {
	Name                  string   `form:"name" binding:"required"`
	Email                 string   `form:"email" binding:"required,email"`
	Year                  string   `form:"year" binding:"required"`
	Branch                string   `form:"branch" binding:"required"`
	Division              string   `form:"division" binding:"required"`
	TenthPercentage       *float64 `form:"tenthPercentage" binding:"omitempty,min=0,max=100"`
	TwelfthPercentage     *float64 `form:"twelfthPercentage" binding:"omitempty,min=0,max=100"`
	EngineeringPercentage *float64 `form:"engineeringPercentage" binding:"omitempty,min=0,max=100"`
	ActiveBacklogs        *int     `form:"activeBacklogs" binding:"omitempty,min=0"`
}

// StudentListResponse represents a student row in the admin listing
type StudentListResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Branch          string `json:"branch"`
	Division        string `json:"division"`
	PRN             string `json:"prn"`
	ProfileComplete bool   `json:"profileComplete"`
	Placed          bool   `json:"placed"`
}

// SetPlacedRequest toggles a student's placed status
type SetPlacedRequest struct {
	Placed bool `json:"placed"`
}

// MapUserToResponse converts a user model to its response DTO
func MapUserToResponse(user *models.User, resumeURL string) UserResponse {
	return UserResponse{
		ID:                    user.ID,
		Username:              user.Username,
		Name:                  user.Name,
		Email:                 user.Email,
		Year:                  user.Year,
		Branch:                user.Branch,
		Division:              user.Division,
		PRN:                   user.PRN,
		TenthPercentage:       user.TenthPercentage,
		TwelfthPercentage:     user.TwelfthPercentage,
		EngineeringPercentage: user.EngineeringPercentage,
		ActiveBacklogs:        user.ActiveBacklogs,
		ResumeURL:             resumeURL,
		Role:                  string(user.RoleType),
		ProfileComplete:       user.ProfileComplete,
		Placed:                user.Placed,
	}
}
