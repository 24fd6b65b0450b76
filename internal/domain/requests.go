package domain

type RSVPRequest struct {
	Code   string `json:"code"`
	Status int    `json:"status"`
	Event  string `json:"event"`
}

type PlusOneRequest struct {
	Code   string `json:"code"`
	Status bool   `json:"status"`
}

type SongChoiceRequest struct {
	Code       string `json:"code"`
	SongChoice string `json:"song_choice"`
}

type DietaryRequirementsRequest struct {
	Code         string `json:"code"`
	Requirements string `json:"requirements"`
}

type ParkingRequiredRequest struct {
	Code     string `json:"code"`
	Required bool   `json:"required"`
}

// ContactDetailsRequest updates the guest-supplied contact fields. Omitted
// fields are left untouched.
type ContactDetailsRequest struct {
	Code     string  `json:"code"`
	Address  *string `json:"address,omitempty"`
	Postcode *string `json:"postcode,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
