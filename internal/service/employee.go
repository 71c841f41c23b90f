// internal/service/employee.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"ponto_backend/internal/models"
	"ponto_backend/internal/utils"

	"gorm.io/gorm"
)

type EmployeeInput struct {
	Code        string
	Name        string
	CompanyName string
	TaxID       string
	NationalID  string
	TypeCode    string
	Type        string
	Site        string
}

// AddEmployee creates a single employee. A duplicate national id is a
// warning, not an error, and writes nothing.
func (s *Service) AddEmployee(in EmployeeInput) (string, Severity) {
	if in.Code == "" || in.Name == "" || in.CompanyName == "" || in.NationalID == "" {
		return "Code, name, company and national id are required.", SeverityError
	}

	msg, sev := "", SeveritySuccess
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Employee
		err := tx.First(&existing, "national_id = ?", in.NationalID).Error
		if err == nil {
			msg = fmt.Sprintf("National id %q is already in use.", in.NationalID)
			sev = SeverityWarning
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		companyID, err := getOrCreateCompany(tx, in.CompanyName, in.TaxID)
		if err != nil {
			return err
		}

		emp := models.Employee{
			NationalID:     in.NationalID,
			Code:           in.Code,
			Name:           in.Name,
			CredentialHash: utils.HashCredential(in.Code),
			Role:           models.RoleEmployee,
			CompanyID:      &companyID,
			TypeCode:       in.TypeCode,
			Type:           in.Type,
			Site:           in.Site,
		}
		return tx.Create(&emp).Error
	})
	if err != nil {
		return "Database error: " + err.Error(), SeverityError
	}
	if msg != "" {
		return msg, sev
	}
	return fmt.Sprintf("Employee %q added.", in.Name), SeveritySuccess
}

// getOrCreateCompany looks a company up by case-insensitive name, creating it
// on first reference. The tax id is overwritten on every reference
// (last write wins).
func getOrCreateCompany(tx *gorm.DB, name, taxID string) (uint, error) {
	name = strings.TrimSpace(name)

	var company models.Company
	err := tx.Where("lower(name) = lower(?)", name).First(&company).Error
	if err == nil {
		if err := tx.Model(&company).Update("tax_id", taxID).Error; err != nil {
			return 0, err
		}
		return company.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	company = models.Company{Name: name, TaxID: taxID}
	if err := tx.Create(&company).Error; err != nil {
		return 0, err
	}
	return company.ID, nil
}

// ImportRow is one already-parsed roster row; file-format parsing happens
// upstream.
type ImportRow struct {
	SourceFile  string
	CompanyName string
	TaxID       string
	TypeCode    string
	Type        string
	Code        string
	Name        string
	NationalID  string
}

// SiteFromSourceLabel maps the free-text source-file label of a roster row
// to a site name.
func SiteFromSourceLabel(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "headquarters"):
		return "Headquarters"
	case strings.Contains(lower, "branch 02"), strings.Contains(lower, "branch 2"):
		return "Branch 02"
	case strings.Contains(lower, "branch 03"), strings.Contains(lower, "branch 3"):
		return "Branch 03"
	case strings.Contains(lower, "branch 04"), strings.Contains(lower, "branch 4"):
		return "Branch 04"
	}
	return "Unidentified"
}

// BulkImport inserts roster rows sequentially deduplicated against both
// already-persisted and previously-queued national ids, then writes the
// whole batch in one insert. A duplicate id counts as ignored, a row with
// missing required fields as an error; neither aborts the batch.
func (s *Service) BulkImport(rows []ImportRow) (added, ignored int, errs []string) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existingIDs []string
		if err := tx.Model(&models.Employee{}).Pluck("national_id", &existingIDs).Error; err != nil {
			return err
		}
		seen := make(map[string]bool, len(existingIDs))
		for _, id := range existingIDs {
			seen[id] = true
		}

		var companies []models.Company
		if err := tx.Find(&companies).Error; err != nil {
			return err
		}
		companyIDs := make(map[string]uint, len(companies))
		for _, c := range companies {
			companyIDs[strings.ToLower(c.Name)] = c.ID
		}

		var queued []models.Employee
		for i, row := range rows {
			id := strings.TrimSpace(row.NationalID)
			code := strings.TrimSpace(row.Code)
			name := strings.TrimSpace(row.Name)
			companyName := strings.TrimSpace(row.CompanyName)

			if seen[id] {
				ignored++
				continue
			}
			// Row numbers are 1-based and the roster carries a header line.
			if id == "" || code == "" || name == "" || companyName == "" {
				errs = append(errs, fmt.Sprintf("row %d: code, name, national id and company are required", i+2))
				continue
			}

			companyID, ok := companyIDs[strings.ToLower(companyName)]
			if !ok {
				var err error
				companyID, err = getOrCreateCompany(tx, companyName, strings.TrimSpace(row.TaxID))
				if err != nil {
					errs = append(errs, fmt.Sprintf("row %d: %v", i+2, err))
					continue
				}
				companyIDs[strings.ToLower(companyName)] = companyID
			}

			cid := companyID
			queued = append(queued, models.Employee{
				NationalID:     id,
				Code:           code,
				Name:           name,
				CredentialHash: utils.HashCredential(code),
				Role:           models.RoleEmployee,
				CompanyID:      &cid,
				TypeCode:       strings.TrimSpace(row.TypeCode),
				Type:           strings.TrimSpace(row.Type),
				Site:           SiteFromSourceLabel(row.SourceFile),
			})
			seen[id] = true
		}

		if len(queued) > 0 {
			if err := tx.Create(&queued).Error; err != nil {
				errs = append(errs, "batch insert failed: "+err.Error())
				return nil
			}
			added = len(queued)
		}
		return nil
	})
	if err != nil {
		errs = append(errs, "database error: "+err.Error())
	}
	return added, ignored, errs
}

// DeleteEmployee removes an employee and cascades to all their punches, in
// one transaction.
func (s *Service) DeleteEmployee(nationalID string) (string, Severity) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", nationalID).Delete(&models.Punch{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, "national_id = ?", nationalID).Error
	})
	if err != nil {
		return "Database error: " + err.Error(), SeverityError
	}
	return fmt.Sprintf("Employee %s and all their punches were deleted.", nationalID), SeveritySuccess
}

// EmployeeRow is an employee joined with its company for listings.
type EmployeeRow struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	NationalID  string      `json:"national_id"`
	TypeCode    string      `json:"type_code"`
	Type        string      `json:"type"`
	Site        string      `json:"site"`
	Role        models.Role `json:"role"`
	CompanyID   *uint       `json:"company_id"`
	CompanyName string      `json:"company_name"`
	TaxID       string      `json:"tax_id"`
}

func (s *Service) ListEmployees() ([]EmployeeRow, error) {
	var rows []EmployeeRow
	err := s.DB.Model(&models.Employee{}).
		Select(`employees.code, employees.name, employees.national_id, employees.type_code,
			employees.type, employees.site, employees.role, employees.company_id,
			companies.name AS company_name, companies.tax_id`).
		Joins("LEFT JOIN companies ON employees.company_id = companies.id").
		Scan(&rows).Error
	return rows, err
}

func (s *Service) ListCompanies() ([]models.Company, error) {
	var rows []models.Company
	err := s.DB.Order("name").Find(&rows).Error
	return rows, err
}
