package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/medtrack/medtrack/internal/model"
)

type ProfileRepository interface {
	ByUserID(userID string) (*model.Profile, error)
	ByUserIDs(userIDs []string) (map[string]*model.Profile, error)
	Create(profile *model.Profile) error
	Update(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM profiles WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// ByUserIDs loads profiles for a set of users in one query, keyed by user ID.
// Used by the dashboards to resolve doctor/patient names for appointment rows.
func (r *profileRepository) ByUserIDs(userIDs []string) (map[string]*model.Profile, error) {
	result := make(map[string]*model.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM profiles WHERE user_id IN (?)`, userIDs)
	if err != nil {
		return nil, err
	}

	var profiles []*model.Profile
	err = r.db.Select(&profiles, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		result[p.UserID] = p
	}

	return result, nil
}

func (r *profileRepository) Create(profile *model.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO profiles (id, user_id, name, age, address, specialization, mobile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, profile.ID, profile.UserID, profile.Name, profile.Age, profile.Address, profile.Specialization, profile.Mobile, profile.CreatedAt, profile.UpdatedAt)

	return err
}

func (r *profileRepository) Update(profile *model.Profile) error {
	result, err := r.db.Exec(`
		UPDATE profiles
		SET name = $1, age = $2, address = $3, specialization = $4, mobile = $5, updated_at = $6
		WHERE user_id = $7
	`, profile.Name, profile.Age, profile.Address, profile.Specialization, profile.Mobile, time.Now(), profile.UserID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no profile found for user_id: %s", profile.UserID)
	}

	return nil
}
