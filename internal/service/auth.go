// internal/service/auth.go
package service

import (
	"ponto_backend/internal/models"
	"ponto_backend/internal/utils"
)

// VerifyLogin checks a national id / code pair against the stored credential
// digest. The same message covers an unknown id and a wrong code.
func (s *Service) VerifyLogin(nationalID, code string) (*models.Employee, string) {
	var emp models.Employee
	if err := s.DB.First(&emp, "national_id = ?", nationalID).Error; err != nil {
		return nil, "Invalid national id or code."
	}
	if !utils.CheckCredential(emp.CredentialHash, code) {
		return nil, "Invalid national id or code."
	}
	return &emp, ""
}
