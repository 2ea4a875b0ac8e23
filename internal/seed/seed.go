package seed

import (
	"time"

	"fetan/internal/domain/entity"
)

// Providers is the reference provider directory. The directory service
// falls back to it when an id is not a registered account.
func Providers() []*entity.User {
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return []*entity.User{
		{
			ID:          "p1",
			Name:        "Nigat Geletu",
			Email:       "nigat@fetan.com",
			Role:        entity.RoleProvider,
			Category:    "Plumbing",
			Rating:      4.8,
			HourlyRate:  200,
			Bio:         "Expert plumber with 10 years of experience in leak detection and pipe installation.",
			Location:    "Adama, Ethiopia",
			Verified:    true,
			ReviewCount: 45,
			Experience:  "10 Years",
			Avatar:      "https://picsum.photos/seed/nigat/150/150",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "p2",
			Name:        "Abel Bekele",
			Email:       "abel@fetan.com",
			Role:        entity.RoleProvider,
			Category:    "Electrical",
			Rating:      4.9,
			HourlyRate:  350,
			Bio:         "Certified electrician specializing in home wiring and appliance installation.",
			Location:    "Addis Ababa, Ethiopia",
			Verified:    true,
			ReviewCount: 120,
			Experience:  "8 Years",
			Avatar:      "https://picsum.photos/seed/abel/150/150",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "p3",
			Name:        "Mahilet Dinku",
			Email:       "mahilet@fetan.com",
			Role:        entity.RoleProvider,
			Category:    "Painting",
			Rating:      4.7,
			HourlyRate:  150,
			Bio:         "Interior and exterior painting specialist. I bring color to your life.",
			Location:    "Adama, Ethiopia",
			Verified:    true,
			ReviewCount: 32,
			Experience:  "5 Years",
			Avatar:      "https://picsum.photos/seed/mahilet/150/150",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "p4",
			Name:        "Imamudin Johar",
			Email:       "imamudin@fetan.com",
			Role:        entity.RoleProvider,
			Category:    "Carpentry",
			Rating:      4.6,
			HourlyRate:  250,
			Bio:         "Custom furniture and woodwork repairs. Quality craftsmanship guaranteed.",
			Location:    "Bishoftu, Ethiopia",
			Verified:    false,
			ReviewCount: 18,
			Experience:  "4 Years",
			Avatar:      "https://picsum.photos/seed/imamudin/150/150",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "p5",
			Name:        "Edom Gurmecha",
			Email:       "edom@fetan.com",
			Role:        entity.RoleProvider,
			Category:    "Installation",
			Rating:      5.0,
			HourlyRate:  300,
			Bio:         "Satellite dish and home security system installation expert.",
			Location:    "Adama, Ethiopia",
			Verified:    true,
			ReviewCount: 60,
			Experience:  "7 Years",
			Avatar:      "https://picsum.photos/seed/edom/150/150",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}
}

// Reviews is the seeded review set. Read-only; no client path creates new
// reviews.
func Reviews() []*entity.Review {
	return []*entity.Review{
		{
			ID:           "r1",
			ProviderID:   "p1",
			ReviewerName: "Alemu T.",
			Rating:       5,
			Date:         "2024-05-16",
			Comment:      "Excellent work! Fixed the leak very quickly and was very professional. Highly recommended.",
		},
		{
			ID:           "r2",
			ProviderID:   "p1",
			ReviewerName: "Sara K.",
			Rating:       4,
			Date:         "2024-04-20",
			Comment:      "Good job, but arrived slightly late. The work itself was solid though.",
		},
		{
			ID:           "r3",
			ProviderID:   "p2",
			ReviewerName: "Dawit M.",
			Rating:       5,
			Date:         "2024-06-02",
			Comment:      "Abel is a master electrician. Installed my complex lighting system perfectly.",
		},
		{
			ID:           "r4",
			ProviderID:   "p3",
			ReviewerName: "Hana B.",
			Rating:       5,
			Date:         "2024-03-15",
			Comment:      "Loved the colors! Very clean work, no mess left behind.",
		},
	}
}

// Jobs is demo job history loaded into the local strategy on first run.
func Jobs() []*entity.Job {
	return []*entity.Job{
		{
			ID:           "j1",
			Title:        "Fix Leaking Sink",
			Description:  "Kitchen sink pipe is leaking heavily.",
			Status:       entity.JobCompleted,
			Date:         "2025-05-15",
			CustomerID:   "u1",
			CustomerName: "Abdulfetah Sultan",
			ProviderID:   "p1",
			ProviderName: "Nigat Geletu",
			Amount:       500,
		},
		{
			ID:           "j2",
			Title:        "Install Ceiling Fan",
			Description:  "Need installation of a new fan in the living room.",
			Status:       entity.JobInProgress,
			Date:         "2025-06-01",
			CustomerID:   "u1",
			CustomerName: "Abdulfetah Sultan",
			ProviderID:   "p2",
			ProviderName: "Abel Bekele",
			Amount:       350,
		},
		{
			ID:           "j3",
			Title:        "Paint Bedroom",
			Description:  "12x12 bedroom needs repainting. White color.",
			Status:       entity.JobPending,
			Date:         "2025-06-02",
			CustomerID:   "u1",
			CustomerName: "Abdulfetah Sultan",
			Amount:       1200,
		},
	}
}
