package seed

import (
	"errors"
	"log"
	"os"

	"github.com/citizenconnect/complaints-api/internal/domain/category"
	"github.com/citizenconnect/complaints-api/internal/domain/institution"
	"github.com/citizenconnect/complaints-api/internal/domain/user"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

// File mirrors the YAML reference-data layout: institutions, categories with
// nested subcategories, and staff accounts.
type File struct {
	Institutions []struct {
		Name        string  `yaml:"name"`
		Code        string  `yaml:"code"`
		Description string  `yaml:"description"`
		Province    string  `yaml:"province"`
		District    *string `yaml:"district"`
	} `yaml:"institutions"`
	Categories []struct {
		Name          string `yaml:"name"`
		Code          string `yaml:"code"`
		Description   string `yaml:"description"`
		Subcategories []struct {
			Name        string `yaml:"name"`
			Code        string `yaml:"code"`
			Description string `yaml:"description"`
		} `yaml:"subcategories"`
	} `yaml:"categories"`
	Users []struct {
		Email           string  `yaml:"email"`
		Password        string  `yaml:"password"`
		FullName        string  `yaml:"full_name"`
		Role            string  `yaml:"role"`
		InstitutionCode *string `yaml:"institution_code"`
	} `yaml:"users"`
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply inserts reference data idempotently: rows are matched by code (email
// for users) and skipped when already present.
func Apply(repos *repository.Repos, f *File) error {
	log.Println("Seeding reference data...")

	for _, i := range f.Institutions {
		if _, err := repos.Institution.GetByCode(i.Code); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		inst := institution.Institution{
			Name:        i.Name,
			Code:        i.Code,
			Description: i.Description,
			Province:    i.Province,
			District:    i.District,
		}
		if err := repos.Institution.Create(&inst); err != nil {
			return err
		}
	}

	for _, c := range f.Categories {
		parent, err := repos.Category.GetByCode(c.Code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			parent = category.Category{
				Name:        c.Name,
				Code:        c.Code,
				Description: c.Description,
			}
			if err := repos.Category.Create(&parent); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, sub := range c.Subcategories {
			if _, err := repos.Category.GetByCode(sub.Code); err == nil {
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			parentID := parent.ID
			child := category.Category{
				Name:        sub.Name,
				Code:        sub.Code,
				Description: sub.Description,
				ParentID:    &parentID,
			}
			if err := repos.Category.Create(&child); err != nil {
				return err
			}
		}
	}

	for _, u := range f.Users {
		if _, err := repos.User.GetByEmail(u.Email); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		var institutionID *uint
		if u.InstitutionCode != nil {
			inst, err := repos.Institution.GetByCode(*u.InstitutionCode)
			if err != nil {
				log.Printf("Seed user %s references unknown institution %s, skipping link", u.Email, *u.InstitutionCode)
			} else {
				institutionID = &inst.ID
			}
		}

		account := user.User{
			Email:         u.Email,
			Password:      string(hashed),
			FullName:      u.FullName,
			Role:          user.Role(u.Role),
			InstitutionID: institutionID,
		}
		if err := repos.User.Save(&account); err != nil {
			return err
		}
	}

	log.Println("Reference data seeding completed")
	return nil
}
