package directory

import (
	"time"

	"github.com/Senethlakshan/wanderlust-tales/models"
)

// DemoUser is the identity the demo credentials log in as.
var DemoUser = models.User{
	ID:        "demo1",
	Username:  "testuser",
	Name:      "Test User",
	Email:     "test@example.com",
	Avatar:    "https://i.pravatar.cc/150?img=8",
	Bio:       "Demo user for testing the TravelTales application",
	Following: 42,
	Followers: 128,
}

func at(layout string) time.Time {
	t, err := time.Parse(time.RFC3339, layout)
	if err != nil {
		panic(err)
	}
	return t
}

func seedData() ([]models.User, []models.Post) {
	users := []models.User{
		{ID: "1", Username: "travel_expert", Name: "Alex Johnson", Avatar: "https://i.pravatar.cc/150?img=1", Following: 245, Followers: 1240},
		{ID: "2", Username: "wildlife_photographer", Name: "Sarah Williams", Avatar: "https://i.pravatar.cc/150?img=2", Following: 125, Followers: 3450},
		{ID: "3", Username: "euro_wanderer", Name: "Mark Thompson", Avatar: "https://i.pravatar.cc/150?img=3", Following: 310, Followers: 2890},
		{ID: "4", Username: "island_hopper", Name: "Emma Davis", Avatar: "https://i.pravatar.cc/150?img=4", Following: 189, Followers: 1678},
		{ID: "5", Username: "adventure_seeker", Name: "Daniel Rodriguez", Avatar: "https://i.pravatar.cc/150?img=5", Following: 267, Followers: 2145},
		{ID: "6", Username: "arctic_explorer", Name: "Laura Winters", Avatar: "https://i.pravatar.cc/150?img=6", Following: 145, Followers: 1921},
		DemoUser,
	}

	posts := []models.Post{
		{
			ID:        "1",
			Title:     "A Week in Kyoto's Ancient Temples",
			Content:   "Japan's former capital is home to hundreds of temples and shrines...",
			Excerpt:   "Exploring the spiritual heart of Japan through its ancient temples and tranquil gardens.",
			ImageURL:  "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e",
			Country:   "Japan",
			AuthorID:  "1",
			Likes:     324,
			Comments:  42,
			CreatedAt: at("2023-11-05T14:48:00Z"),
			UpdatedAt: at("2023-11-05T14:48:00Z"),
			Tags:      []string{"temples", "culture", "history"},
			RelatedPosts: []models.PostSummary{
				{ID: "3", Title: "Venice Canals: A Floating Dream", ImageURL: "https://images.unsplash.com/photo-1523906834658-6e24ef2386f9", CreatedAt: at("2023-09-14T16:30:00Z")},
				{ID: "6", Title: "Northern Lights in Iceland", ImageURL: "https://images.unsplash.com/photo-1484950763426-56b5bf172dbb", CreatedAt: at("2023-11-29T22:10:00Z")},
			},
		},
		{
			ID:        "2",
			Title:     "Sunset Safari in the Serengeti",
			Content:   "As the sun sets over the vast plains of the Serengeti...",
			Excerpt:   "Witnessing the majesty of African wildlife during the golden hour in Tanzania's most famous national park.",
			ImageURL:  "https://images.unsplash.com/photo-1523805009345-7448845a9e53",
			Country:   "Tanzania",
			AuthorID:  "2",
			Likes:     552,
			Comments:  87,
			CreatedAt: at("2023-10-22T09:12:00Z"),
			UpdatedAt: at("2023-10-22T09:12:00Z"),
		},
		{
			ID:        "3",
			Title:     "Venice Canals: A Floating Dream",
			Content:   "Navigating the historic waterways of Venice...",
			Excerpt:   "Getting lost in the magical floating city where every corner reveals a new historic wonder.",
			ImageURL:  "https://images.unsplash.com/photo-1523906834658-6e24ef2386f9",
			Country:   "Italy",
			AuthorID:  "3",
			Likes:     423,
			Comments:  56,
			CreatedAt: at("2023-09-14T16:30:00Z"),
			UpdatedAt: at("2023-09-14T16:30:00Z"),
		},
		{
			ID:        "4",
			Title:     "Hidden Beaches of Thailand",
			Content:   "Beyond the popular tourist spots lies a world of pristine beaches...",
			Excerpt:   "Discovering secluded paradise beaches away from the crowds in Thailand's lesser-known islands.",
			ImageURL:  "https://images.unsplash.com/photo-1504214208698-ea1916a2195a",
			Country:   "Thailand",
			AuthorID:  "4",
			Likes:     289,
			Comments:  34,
			CreatedAt: at("2023-12-02T11:24:00Z"),
			UpdatedAt: at("2023-12-02T11:24:00Z"),
		},
		{
			ID:        "5",
			Title:     "Hiking the Inca Trail to Machu Picchu",
			Content:   "Four days of trekking through cloud forests and ancient ruins...",
			Excerpt:   "Following in the footsteps of the Incas on the legendary trail to one of the world's most spectacular archaeological sites.",
			ImageURL:  "https://images.unsplash.com/photo-1526392060635-9d6019884377",
			Country:   "Peru",
			AuthorID:  "5",
			Likes:     467,
			Comments:  72,
			CreatedAt: at("2023-08-17T07:55:00Z"),
			UpdatedAt: at("2023-08-17T07:55:00Z"),
		},
		{
			ID:        "6",
			Title:     "Northern Lights in Iceland",
			Content:   "Chasing the elusive aurora borealis across Iceland's volcanic landscapes...",
			Excerpt:   "Experiencing the magical dance of the Northern Lights against Iceland's dramatic winter scenery.",
			ImageURL:  "https://images.unsplash.com/photo-1484950763426-56b5bf172dbb",
			Country:   "Iceland",
			AuthorID:  "6",
			Likes:     512,
			Comments:  63,
			CreatedAt: at("2023-11-29T22:10:00Z"),
			UpdatedAt: at("2023-11-29T22:10:00Z"),
		},
	}
	return users, posts
}

func seedCountries() []models.Country {
	return []models.Country{
		{Name: "Japan", Code: "JP", Flag: "🇯🇵", Currency: "Japanese Yen (JPY)", Capital: "Tokyo"},
		{Name: "Italy", Code: "IT", Flag: "🇮🇹", Currency: "Euro (EUR)", Capital: "Rome"},
		{Name: "France", Code: "FR", Flag: "🇫🇷", Currency: "Euro (EUR)", Capital: "Paris"},
		{Name: "Thailand", Code: "TH", Flag: "🇹🇭", Currency: "Thai Baht (THB)", Capital: "Bangkok"},
		{Name: "Peru", Code: "PE", Flag: "🇵🇪", Currency: "Peruvian Sol (PEN)", Capital: "Lima"},
		{Name: "Iceland", Code: "IS", Flag: "🇮🇸", Currency: "Icelandic Króna (ISK)", Capital: "Reykjavik"},
		{Name: "Tanzania", Code: "TZ", Flag: "🇹🇿", Currency: "Tanzanian Shilling (TZS)", Capital: "Dodoma"},
	}
}
