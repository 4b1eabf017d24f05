package domain

// SiteSettings is a singleton document, overwritten wholesale on admin save.
type SiteSettings struct {
	Phone           string `json:"phone"`
	Phone2          string `json:"phone2"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	AddressShort    string `json:"addressShort"`
	WorkingHours    string `json:"workingHours"`
	LineURL         string `json:"lineUrl"`
	LineID          string `json:"lineId"`
	FacebookURL     string `json:"facebookUrl"`
	MessengerURL    string `json:"messengerUrl"`
	YoutubeURL      string `json:"youtubeUrl"`
	GoogleMapsEmbed string `json:"googleMapsEmbed"`
	HeroTitle       string `json:"heroTitle"`
	HeroSubtitle    string `json:"heroSubtitle"`
	HeroDescription string `json:"heroDescription"`
}

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Highlight struct {
	Label string `json:"label"`
	Desc  string `json:"desc"`
}

// AboutData is the company-page singleton document.
type AboutData struct {
	CompanyName      string       `json:"companyName"`
	CompanyNameTh    string       `json:"companyNameTh"`
	FoundedYear      string       `json:"foundedYear"`
	Description      string       `json:"description"`
	DescriptionExtra string       `json:"descriptionExtra"`
	DeltaGroupInfo   string       `json:"deltaGroupInfo"`
	TeamMembers      []TeamMember `json:"teamMembers"`
	Highlights       []Highlight  `json:"highlights"`
}

// ServiceItem has a string id chosen by the admin, not a generated one.
type ServiceItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	Features []string `json:"features"`
}
