package seed

import "github.com/moscowmix/sitesync/internal/domain"

func ptr(v float64) *float64 { return &v }

// Default returns the compiled-in site configuration. It is uploaded to
// the remote store the first time no document exists there, and serves as
// the fallback side of every reconciliation merge. Re-uploading it is
// idempotent, so two sessions racing the bootstrap is harmless.
func Default() domain.Snapshot {
	return domain.Snapshot{
		HeroHeadline:    "Where Craft Meets <br/> Elemental Power",
		HeroSubheadline: "Authentic copper drinkware and natural fire starters—crafted with purity and purpose.",
		Assets: domain.Assets{
			"heroVideoPoster": "https://images.unsplash.com/photo-1542332213-31f87348057f?q=80&w=2070&auto=format&fit=crop",
			"fireStarterHero": "https://images.unsplash.com/photo-1478131143081-80f7f84ca84d?q=80&w=2070&auto=format&fit=crop",
			"copperHero":      "https://images.unsplash.com/photo-1620219662768-e366141a0635?q=80&w=2070&auto=format&fit=crop",
			"brandMark":       "https://images.unsplash.com/photo-1625016279860-936639b7a421?q=80&w=200&auto=format&fit=crop",
			"lifestyleRitual": "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?q=80&w=1200&auto=format&fit=crop",
			"textureWood":     "https://images.unsplash.com/photo-1611566026373-c6c8544c0429?q=80&w=1000&auto=format&fit=crop",
			"textureCopper":   "https://images.unsplash.com/photo-1625016279860-936639b7a421?q=80&w=1000&auto=format&fit=crop",
			"lifestyleCabin":  "https://images.unsplash.com/photo-1445583934509-4152fdd32399?q=80&w=2073&auto=format&fit=crop",
			"lifestyleKitchen": "https://images.unsplash.com/photo-1605218427368-35b019b8db58?q=80&w=2000&auto=format&fit=crop",
		},
		Products:  defaultProducts(),
		BlogPosts: defaultPosts(),
		Story: domain.Story{
			Headline:    "Crafted From the Elements. Designed for Life.",
			Subheadline: "Designed for Life.",
			Narrative: "Moscow Mix was founded on a belief that everyday products don't have to be disposable or soulless. " +
				"Copper and wood—two of Earth's oldest materials—carry history, warmth, and character. " +
				"When shaped with intention, they elevate the simple moments that make up a life." +
				"<br/><br/>" +
				"Our copper drinkware is made from 100% pure copper, not plated shortcuts that chip or tarnish prematurely. " +
				"Our fire starters are formed from natural wood wool, igniting cleanly without chemicals or fumes.",
			Values:    []string{"Purity", "Durability", "Purpose", "Design Integrity"},
			HeroImage: "https://images.unsplash.com/photo-1504280501179-fac52ddca06a?q=80&w=2070&auto=format&fit=crop",
		},
		AdminPassword: domain.DefaultAdminPassword,
		PasswordHint:  "Default is admin",
	}
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "copper-mule-16oz",
			Name:        "Premium Pure Copper Mug (16oz)",
			Subtitle:    "Hand-Hammered Solid Copper",
			Price:       ptr(34.95),
			Description: "Crafted from 100% pure copper, this mug delivers the coldest, cleanest, most refreshing drink experience possible. The hammered finish adds grip, character, and premium texture.",
			Features: []string{
				"Solid copper construction",
				"Naturally antimicrobial",
				"Hand-hammered finish",
				"No lining, lacquer, or coating",
				"Built to last decades",
			},
			Category: domain.CategoryCopperDrinkware,
			Images: []string{
				"https://images.unsplash.com/photo-1620219662768-e366141a0635?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1563222378-5776d65314a5?q=80&w=800&auto=format&fit=crop",
			},
			Rating:       4.9,
			Reviews:      428,
			IsBestSeller: true,
			AmazonURL:    "https://amazon.com",
		},
		{
			ID:          "copper-water-bottle-34oz",
			Name:        "Pure Copper Water Bottle (34oz)",
			Subtitle:    "Hydrate With Purity",
			Price:       ptr(44.95),
			Description: "Crafted from single-sheet pure copper for refreshing hydration with a naturally purifying effect. No plastic, no steel taste, just clean copper.",
			Features: []string{
				"Seamless pure copper build",
				"Enhances water freshness",
				"Classic spill-proof design",
				"Perfect for home, office, gym",
			},
			Category: domain.CategoryCopperDrinkware,
			Images: []string{
				"https://images.unsplash.com/photo-1647416395561-396e81134268?q=80&w=800&auto=format&fit=crop",
			},
			Rating:    4.8,
			Reviews:   156,
			AmazonURL: "https://amazon.com",
		},
		{
			ID:          "copper-jug-2l",
			Name:        "Premium Pure Copper Water Jug (2L)",
			Subtitle:    "Timeless Design, Clean Hydration",
			Price:       ptr(89.95),
			Description: "Timeless design meets clean hydration. A centerpiece for modern and classic kitchens alike.",
			Features: []string{
				"100% pure copper body",
				"Large 2L capacity",
				"Natural antimicrobial benefits",
				"Comes with matching lid",
			},
			Category: domain.CategoryCopperDrinkware,
			Images: []string{
				"https://images.unsplash.com/photo-1596708785934-1c52d80c3c66?q=80&w=800&auto=format&fit=crop",
			},
			Rating:    5.0,
			Reviews:   42,
			IsNew:     true,
			AmazonURL: "https://amazon.com",
		},
		{
			ID:          "fire-starters-150",
			Name:        "Natural Wood Wool Fire Starters",
			Subtitle:    "Instant Flame, Zero Chemicals",
			Price:       ptr(29.95),
			Description: "Made from pure wood wool and natural wax, these fire starters ignite instantly and burn cleanly for up to 10 minutes. Safe for stoves, grills, fire pits, and camping.",
			Features: []string{
				"Lights with a single spark",
				"Zero chemical smell",
				"Indoor + outdoor safe",
				"Available in 25, 75, 150 packs",
			},
			Category: domain.CategoryFireStarters,
			Images: []string{
				"https://images.unsplash.com/photo-1582236560935-71cb133d348a?q=80&w=800&auto=format&fit=crop",
			},
			Rating:       5.0,
			Reviews:      892,
			IsBestSeller: true,
			AmazonURL:    "https://amazon.com",
		},
		{
			ID:          "fire-starter-cubes",
			Name:        "Fire Starter Cubes",
			Subtitle:    "Simple. Powerful. Clean.",
			Price:       ptr(19.95),
			Description: "Dense ignition cores with a sustained burn that gets even stubborn logs or charcoal going without lighter fluid.",
			Features: []string{
				"Dense ignition core",
				"Clean burning",
				"Moisture-resistant",
				"Perfect for barbecues",
			},
			Category: domain.CategoryFireStarters,
			Images: []string{
				"https://images.unsplash.com/photo-1618330835717-8751de2bc392?q=80&w=800&auto=format&fit=crop",
			},
			Rating:    4.7,
			Reviews:   89,
			AmazonURL: "https://amazon.com",
		},
	}
}

func defaultPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{
			ID:              "science-of-copper",
			Title:           "Why Your Mule Tastes Better in Pure Copper",
			Excerpt:         "It's not just tradition—it's thermal dynamics. Discover how copper's atomic structure interacts with ice and citric acid to create the perfect sip.",
			Slug:            "why-your-mule-tastes-better-in-pure-copper",
			MetaDescription: "Discover the science behind copper mugs and why they make Moscow Mules taste better.",
			Tags:            []string{"Science", "Cocktails", "Copper Care"},
			Content:         "<p>The Moscow Mule is famous for its copper mug, but few people understand the science behind it. When the cold copper touches your lips, the metal instantly takes on the temperature of the drink.</p><h2>The Thermal Advantage</h2><p>Copper is one of the most thermally conductive metals on earth. In a copper mug, the cold is transferred to the vessel itself.</p>",
			CoverImage:      "https://images.unsplash.com/photo-1620219662768-e366141a0635?q=80&w=1200&auto=format&fit=crop",
			Date:            "October 12, 2023",
			Author:          "Michael B.",
			ReadTime:        "4 min read",
		},
		{
			ID:              "art-of-fire",
			Title:           "The Lost Art of Building a Fire",
			Excerpt:         "Stop using lighter fluid. Learn the log cabin method and why natural materials matter for the perfect hearth.",
			Slug:            "lost-art-building-fire",
			MetaDescription: "Learn how to build the perfect fire using the log cabin method and natural wood wool starters.",
			Tags:            []string{"Firecraft", "Outdoors", "How-To"},
			Content:         "<p>Building a fire is a primal ritual. The log cabin method, combined with natural wood wool starters, ensures a clean, sustainable burn.</p><p>Start with two large logs parallel to each other, then stack smaller logs across them to create a chimney effect that draws oxygen into the center.</p>",
			CoverImage:      "https://images.unsplash.com/photo-1496317512549-d828d9c12532?q=80&w=1200&auto=format&fit=crop",
			Date:            "November 05, 2023",
			Author:          "Sarah J.",
			ReadTime:        "6 min read",
		},
	}
}
