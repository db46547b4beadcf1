// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumSwaps    int
	ShouldClean bool
}

var skillPool = []string{
	"Guitar", "Piano", "Singing", "Photography", "Video Editing",
	"Cooking", "Baking", "Gardening", "Woodworking", "Knitting",
	"Spanish", "French", "German", "Japanese", "Mandarin",
	"Yoga", "Personal Training", "Running Coaching", "Swimming",
	"Web Design", "Programming", "Excel", "Public Speaking",
	"Creative Writing", "Drawing", "Painting", "Chess", "Car Repair",
}

var availabilities = []string{
	"weekends", "weekday evenings", "flexible", "mornings", "afternoons",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	log.Printf("Seeding %d users and %d swap requests...", opts.NumUsers, opts.NumSwaps)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	swaps, err := createSwaps(db, users, opts.NumSwaps)
	if err != nil {
		return fmt.Errorf("failed to create swap requests: %w", err)
	}
	log.Printf("%d swap requests created", len(swaps))

	n, err := createRatings(db, swaps)
	if err != nil {
		return fmt.Errorf("failed to create ratings: %w", err)
	}
	log.Printf("%d ratings created", n)

	if err := refreshAggregates(db, users); err != nil {
		return fmt.Errorf("failed to refresh rating aggregates: %w", err)
	}

	log.Println("Database seeding completed. All test users have the password: SeedPassword1!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"admin_logs", "ratings", "swap_requests", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func pickSkills(r *rand.Rand, n int) []string {
	picked := make([]string, 0, n)
	perm := r.Perm(len(skillPool))
	for _, idx := range perm[:n] {
		picked = append(picked, skillPool[idx])
	}
	return picked
}

func createUsers(db *gorm.DB, n int) ([]models.User, error) {
	// One hash for all seed users keeps seeding fast.
	hash, err := bcrypt.GenerateFromPassword([]byte("SeedPassword1!"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			Name:          gofakeit.Name(),
			Email:         fmt.Sprintf("seed%d_%s", i, gofakeit.Email()),
			Password:      string(hash),
			Location:      gofakeit.City(),
			Availability:  availabilities[r.Intn(len(availabilities))],
			SkillsOffered: pickSkills(r, 2+r.Intn(3)),
			SkillsWanted:  pickSkills(r, 1+r.Intn(3)),
			IsPublic:      r.Intn(10) > 0, // ~10% private
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createSwaps(db *gorm.DB, users []models.User, n int) ([]models.SwapRequest, error) {
	if len(users) < 2 {
		return nil, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := []models.SwapStatus{
		models.SwapStatusPending, models.SwapStatusAccepted, models.SwapStatusRejected,
		models.SwapStatusCompleted, models.SwapStatusCompleted, models.SwapStatusCancelled,
	}

	swaps := make([]models.SwapRequest, 0, n)
	for i := 0; i < n; i++ {
		from := users[r.Intn(len(users))]
		to := users[r.Intn(len(users))]
		if from.ID == to.ID {
			continue
		}

		status := statuses[r.Intn(len(statuses))]
		swap := models.SwapRequest{
			FromUserID:      from.ID,
			ToUserID:        to.ID,
			Message:         gofakeit.Sentence(8),
			SkillsOffered:   pickSkills(r, 1),
			SkillsRequested: pickSkills(r, 1),
			Status:          status,
			CreatedAt:       time.Now().Add(-time.Duration(r.Intn(60*24)) * time.Hour),
		}
		if status == models.SwapStatusCompleted {
			done := swap.CreatedAt.Add(time.Duration(1+r.Intn(72)) * time.Hour)
			swap.CompletedAt = &done
		}
		swaps = append(swaps, swap)
	}
	if len(swaps) == 0 {
		return swaps, nil
	}
	if err := db.Create(&swaps).Error; err != nil {
		return nil, err
	}
	return swaps, nil
}

func createRatings(db *gorm.DB, swaps []models.SwapRequest) (int, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var ratings []models.Rating
	for _, swap := range swaps {
		if swap.Status != models.SwapStatusCompleted {
			continue
		}
		// Each participant rates with 70% probability.
		pairs := [][2]uint{{swap.FromUserID, swap.ToUserID}, {swap.ToUserID, swap.FromUserID}}
		for _, pair := range pairs {
			if r.Intn(10) >= 7 {
				continue
			}
			ratings = append(ratings, models.Rating{
				FromUserID:    pair[0],
				ToUserID:      pair[1],
				SwapRequestID: swap.ID,
				Score:         2 + r.Intn(4),
				Feedback:      gofakeit.Sentence(10),
			})
		}
	}
	if len(ratings) == 0 {
		return 0, nil
	}
	if err := db.Create(&ratings).Error; err != nil {
		return 0, err
	}
	return len(ratings), nil
}

// refreshAggregates recomputes each seeded user's stored average and count so
// profiles and ratings agree after the bulk insert.
func refreshAggregates(db *gorm.DB, users []models.User) error {
	for _, user := range users {
		var agg struct {
			Avg   float64
			Count int64
		}
		if err := db.Table("ratings").
			Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
			Where("to_user_id = ?", user.ID).
			Scan(&agg).Error; err != nil {
			return err
		}
		if agg.Count == 0 {
			continue
		}
		if err := db.Table("users").
			Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"rating":        math.Round(agg.Avg*10) / 10,
				"total_ratings": agg.Count,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}
