package models

// Service represents a bookable treatment with its fixed slot catalog.
// Slots are the full per-service catalog; availability for a given date is
// computed per request, never persisted.
type Service struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"` // Unique; bookings join on this value.
	Slots []string `bson:"slots" json:"slots"`
}

// HomeService is a home-page service card (the "ourService" collection).
type HomeService struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Img         string `bson:"img,omitempty" json:"img,omitempty"`
}
