package profileservice

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sushihentaime/portfolio/internal/common"
)

func NewProfileService(db *sql.DB, cache *common.Cache) *ProfileService {
	return &ProfileService{m: newProfileModel(db), cache: cache}
}

// GetProfile returns the latest profile, served from the cache when possible.
func (s *ProfileService) GetProfile(ctx context.Context) (*Profile, error) {
	if v, ok := s.cache.Get(common.CacheKeyProfile); ok {
		p := v.(Profile)
		return &p, nil
	}

	gen := s.cache.Generation(common.CacheKeyProfile)

	p, err := s.m.get(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetIfCurrent(common.CacheKeyProfile, gen, *p)
	return p, nil
}

// SaveProfile creates the profile on first write and merges into it afterwards. The boolean
// reports whether a new profile was created.
func (s *ProfileService) SaveProfile(ctx context.Context, req *ProfileRequest) (*Profile, bool, error) {
	var (
		p       *Profile
		created bool
	)

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	err := common.WithTx(ctx, s.m.db, func(tx *sql.Tx) error {
		if err := common.AdvisoryLock(ctx, tx, common.LockKeyProfile); err != nil {
			return err
		}

		current, err := s.m.latest(ctx, tx)
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			p = &Profile{ID: uuid.New(), Skills: Skills{}}
			created = true
		case err != nil:
			return err
		default:
			p = current
		}

		mergeProfile(p, req)

		v := common.NewValidator()
		validateProfile(v, p)
		if !v.Valid() {
			return v.ValidationError()
		}

		if created {
			return s.m.insert(ctx, tx, p)
		}
		return s.m.update(ctx, tx, p)
	})
	if err != nil {
		return nil, false, err
	}

	s.cache.Invalidate(common.CacheKeyProfile)
	return p, created, nil
}

func mergeProfile(p *Profile, req *ProfileRequest) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Email != nil {
		p.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		p.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Location != nil {
		p.Location = strings.TrimSpace(*req.Location)
	}
	if req.ProfileImage != nil {
		p.ProfileImage = *req.ProfileImage
	}
	if req.Skills != nil {
		skills := make(Skills, len(*req.Skills))
		for i, sk := range *req.Skills {
			skills[i] = Skill{Name: strings.TrimSpace(sk.Name), Level: sk.Level}
		}
		p.Skills = skills
	}
	if req.SocialLinks != nil {
		p.SocialLinks = *req.SocialLinks
	}
}
