package profileservice

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sushihentaime/portfolio/internal/common"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

type Profile struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Bio          string      `json:"bio"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	Location     string      `json:"location,omitempty"`
	ProfileImage string      `json:"profileImage,omitempty"`
	Skills       Skills      `json:"skills"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Version      int         `json:"version"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Skills keeps its order and is stored as a jsonb array.
type Skills []Skill

func (s Skills) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *Skills) Scan(src any) error {
	return scanJSON(src, s)
}

type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

func (l SocialLinks) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *SocialLinks) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported jsonb source type")
	}
}

// ProfileRequest carries a create-or-update write. Nil fields keep their stored value.
type ProfileRequest struct {
	Name         *string      `json:"name"`
	Title        *string      `json:"title"`
	Bio          *string      `json:"bio"`
	Email        *string      `json:"email"`
	Phone        *string      `json:"phone"`
	Location     *string      `json:"location"`
	ProfileImage *string      `json:"profileImage"`
	Skills       *[]Skill     `json:"skills"`
	SocialLinks  *SocialLinks `json:"socialLinks"`
}

type ProfileModel struct {
	db *sql.DB
}

type ProfileService struct {
	m     *ProfileModel
	cache *common.Cache
}
