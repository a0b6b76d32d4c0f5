package models

// Doctor is an expert-doctor profile shown on the public site.
type Doctor struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Specialty string   `bson:"specialty" json:"specialty"`
	Education string   `bson:"education,omitempty" json:"education,omitempty"`
	Location  string   `bson:"location,omitempty" json:"location,omitempty"`
	Img       string   `bson:"img,omitempty" json:"img,omitempty"`
	Services  []string `bson:"services,omitempty" json:"services,omitempty"`
}
