package model

// AgeRanges holds the per-bracket child counts. Bracket names are part of
// the wire and sheet contract, do not rename.
type AgeRanges struct {
	Age0to3   int `json:"0-3" validate:"gte=0"`
	Age4to10  int `json:"4-10" validate:"gte=0"`
	Age11to17 int `json:"11-17" validate:"gte=0"`
}

// Sum re-derives the total child count from the brackets.
func (a AgeRanges) Sum() int {
	return a.Age0to3 + a.Age4to10 + a.Age11to17
}

type Children struct {
	Count     int       `json:"count" validate:"gte=0,lte=10"`
	AgeRanges AgeRanges `json:"ageRanges"`
}

// Record is one stored RSVP response, keyed by normalized email or phone.
// Timestamps are fixed-width UTC strings (constant.TimeLayout).
type Record struct {
	ID           string   `json:"id"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Attending    bool     `json:"attending"`
	AdultPartner bool     `json:"adultPartner"`
	Children     Children `json:"children"`
	Message      string   `json:"message,omitempty"`
}

// SubmitRequest is the guest-facing submission payload. The client-supplied
// children count is never trusted, the server re-derives it from the brackets.
type SubmitRequest struct {
	Code         string   `json:"code" validate:"required,min=3"`
	Name         string   `json:"name" validate:"required,min=2"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone"`
	Attending    *bool    `json:"attending" validate:"required"`
	AdultPartner bool     `json:"adultPartner"`
	Children     Children `json:"children"`
	Message      string   `json:"message" validate:"max=500"`
}

type SubmitResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ListResponse is the admin listing payload.
type ListResponse struct {
	Count int      `json:"count"`
	Items []Record `json:"items"`
}
