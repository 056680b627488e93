package catalog

import "github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"

var (
	Categories = []string{"Technology", "Finance", "Health", "Retail", "Logistics"}
	Industries = []string{"B2B", "B2C", "Enterprise", "Startup"}
)

func SeedListings() []domain.Listing {
	return []domain.Listing{
		{
			Base: domain.Base{
				ID:          "1",
				Name:        "Nexus Tech Solutions",
				Category:    "Technology",
				Description: "Providing cutting-edge cloud infrastructure for Fortune 500 companies.",
				Image:       "https://picsum.photos/seed/tech1/400/300",
			},
			Industry: "Enterprise",
			Location: "San Francisco, CA",
			Rating:   4.8,
			Status:   domain.ListingPublished,
		},
		{
			Base: domain.Base{
				ID:          "2",
				Name:        "Quantum Finance Group",
				Category:    "Finance",
				Description: "Next-generation algorithmic trading and wealth management tools.",
				Image:       "https://picsum.photos/seed/finance1/400/300",
			},
			Industry: "B2B",
			Location: "London, UK",
			Rating:   4.9,
			Status:   domain.ListingPublished,
		},
		{
			Base: domain.Base{
				ID:          "3",
				Name:        "GreenLeaf Logistics",
				Category:    "Logistics",
				Description: "Eco-friendly shipping and supply chain management for small businesses.",
				Image:       "https://picsum.photos/seed/logistics1/400/300",
			},
			Industry: "B2C",
			Location: "Berlin, Germany",
			Rating:   4.5,
			Status:   domain.ListingPublished,
		},
		{
			Base: domain.Base{
				ID:          "4",
				Name:        "VitalHealth Systems",
				Category:    "Health",
				Description: "Comprehensive health monitoring software for hospital networks.",
				Image:       "https://picsum.photos/seed/health1/400/300",
			},
			Industry: "Enterprise",
			Location: "Boston, MA",
			Rating:   4.7,
			Status:   domain.ListingPublished,
		},
	}
}

func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			Base: domain.Base{
				ID:          "p1",
				Name:        "Enterprise License",
				Category:    "Software",
				Description: "Full access for up to 50 users with 24/7 priority support.",
				Image:       "https://picsum.photos/seed/sw1/400/400",
			},
			Price: 999.00,
			Stock: 100,
		},
		{
			Base: domain.Base{
				ID:          "p2",
				Name:        "Cloud Storage Pro",
				Category:    "Storage",
				Description: "1TB of encrypted cloud storage with automatic redundancy.",
				Image:       "https://picsum.photos/seed/sw2/400/400",
			},
			Price: 49.99,
			Stock: 500,
		},
		{
			Base: domain.Base{
				ID:          "p3",
				Name:        "Security Audit Pack",
				Category:    "Consulting",
				Description: "Full penetration testing and security compliance report.",
				Image:       "https://picsum.photos/seed/sw3/400/400",
			},
			Price: 249.00,
			Stock: 10,
		},
	}
}
