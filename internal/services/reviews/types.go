package reviews

import "time"

type Review struct {
	Id        string    `json:"id"`
	TourId    string    `json:"tourId"`
	UserId    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewReviewRequest is the client-supplied part of a review. Author identity
// always comes from the authenticated session, never from the body.
type NewReviewRequest struct {
	Text   string `json:"text" validate:"required,min=10,max=500"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

type AllReviewsFromTour struct {
	Reviews []Review `json:"reviews"`
	Count   int      `json:"count"`
}
