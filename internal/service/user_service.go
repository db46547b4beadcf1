package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// DiscoveryLimit caps how many users a single browse query returns.
const DiscoveryLimit = 20

// ProfileUpdate carries the caller-editable profile fields. Pointer fields
// distinguish "not provided" from zero values.
type ProfileUpdate struct {
	Name          *string   `json:"name"`
	Location      *string   `json:"location"`
	Availability  *string   `json:"availability"`
	IsPublic      *bool     `json:"is_public"`
	SkillsOffered *[]string `json:"skills_offered"`
	SkillsWanted  *[]string `json:"skills_wanted"`
}

// UserService provides profile and discovery business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns a user's profile. Private profiles are only visible to
// their owner.
func (s *UserService) GetProfile(ctx context.Context, viewerID, targetID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !user.IsPublic && viewerID != targetID {
		return nil, models.NewUnauthorizedError("This profile is private")
	}
	return user, nil
}

// UpdateProfile applies the provided fields to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if err := validation.ValidateName(*update.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Location != nil {
		user.Location = strings.TrimSpace(*update.Location)
	}
	if update.Availability != nil {
		user.Availability = strings.TrimSpace(*update.Availability)
	}
	if update.IsPublic != nil {
		user.IsPublic = *update.IsPublic
	}
	if update.SkillsOffered != nil {
		cleaned, err := normalizeSkills(*update.SkillsOffered)
		if err != nil {
			return nil, err
		}
		user.SkillsOffered = cleaned
	}
	if update.SkillsWanted != nil {
		cleaned, err := normalizeSkills(*update.SkillsWanted)
		if err != nil {
			return nil, err
		}
		user.SkillsWanted = cleaned
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddSkill appends a skill to one of the user's lists. Adding a skill that is
// already present (exact match) is a no-op, not an error.
func (s *UserService) AddSkill(ctx context.Context, userID uint, list, skill string) (*models.User, error) {
	if err := validation.ValidateSkill(skill); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	skill = strings.TrimSpace(skill)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch list {
	case "offered":
		if containsSkill(user.SkillsOffered, skill) {
			return user, nil
		}
		user.SkillsOffered = append(user.SkillsOffered, skill)
	case "wanted":
		if containsSkill(user.SkillsWanted, skill) {
			return user, nil
		}
		user.SkillsWanted = append(user.SkillsWanted, skill)
	default:
		return nil, models.NewValidationError("list must be 'offered' or 'wanted'")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveSkill removes a skill from one of the user's lists by exact string
// match. Removing a skill that is not present is a no-op.
func (s *UserService) RemoveSkill(ctx context.Context, userID uint, list, skill string) (*models.User, error) {
	skill = strings.TrimSpace(skill)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch list {
	case "offered":
		user.SkillsOffered = removeSkill(user.SkillsOffered, skill)
	case "wanted":
		user.SkillsWanted = removeSkill(user.SkillsWanted, skill)
	default:
		return nil, models.NewValidationError("list must be 'offered' or 'wanted'")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Discover returns public profiles, best rated first. A skill query matches
// the two skill lists only; a general search additionally matches display
// names. The skill query wins when both are given.
func (s *UserService) Discover(ctx context.Context, userID uint, skill, search string) ([]models.UserSummary, error) {
	query := strings.TrimSpace(skill)
	matchName := false
	if query == "" {
		query = strings.TrimSpace(search)
		matchName = query != ""
	}

	users, err := s.userRepo.Discover(ctx, userID, query, matchName, DiscoveryLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

func normalizeSkills(skills []string) ([]string, error) {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		if err := validation.ValidateSkill(skill); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		trimmed := strings.TrimSpace(skill)
		if !containsSkill(cleaned, trimmed) {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned, nil
}

// Skill membership is exact string match; "Guitar" and "guitar" are distinct
// entries.
func containsSkill(list []string, skill string) bool {
	for _, s := range list {
		if s == skill {
			return true
		}
	}
	return false
}

func removeSkill(list []string, skill string) []string {
	out := list[:0]
	for _, s := range list {
		if s != skill {
			out = append(out, s)
		}
	}
	return out
}
