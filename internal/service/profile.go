package service

import (
	"errors"
	"strings"

	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/medtrack/medtrack/internal/validation"
)

// ProfileInput carries the profile edit form fields. Age arrives as the raw
// form string and is parsed here.
type ProfileInput struct {
	Name           string
	Age            string
	Mobile         string
	Address        string
	Specialization string
}

type ProfileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get loads a user's profile.
func (s *ProfileService) Get(userID string) (*model.Profile, error) {
	return s.profiles.ByUserID(userID)
}

// Update validates and saves the profile fields for the user's role.
// Patients keep their address, doctors their specialization; the field
// for the other role is left untouched.
func (s *ProfileService) Update(user *model.User, input ProfileInput) (*model.Profile, error) {
	profile, err := s.profiles.ByUserID(user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, err
		}
		profile = &model.Profile{UserID: user.ID}
	}

	err = validation.ValidateName(input.Name)
	if err != nil {
		return nil, err
	}
	profile.Name = strings.TrimSpace(input.Name)

	if input.Age != "" {
		age, err := validation.ParseAge(input.Age)
		if err != nil {
			return nil, err
		}
		profile.Age = age
	}

	if input.Mobile != "" {
		err = validation.ValidateMobile(input.Mobile)
		if err != nil {
			return nil, err
		}
	}
	profile.Mobile = strings.TrimSpace(input.Mobile)

	if user.IsPatient() {
		profile.Address = strings.TrimSpace(input.Address)
	} else {
		profile.Specialization = strings.TrimSpace(input.Specialization)
	}

	if profile.ID == "" {
		err = s.profiles.Create(profile)
	} else {
		err = s.profiles.Update(profile)
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}
