package model

// AnonymousUsername is shown for authors who never set a username.
const AnonymousUsername = "Anonymous"

// Review represents a recipe review. Reviews are insert-only: there is
// no edit or delete operation, and they survive recipe deletion.
type Review struct {
	ID        string `json:"id"`
	RecipeID  string `json:"recipeId"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"` // epoch millis
}

// ReviewWithAuthor is a review joined with its author's username,
// which stays nil until the author sets one.
type ReviewWithAuthor struct {
	Review
	Username *string
}

// DisplayUsername resolves the label shown in listings.
func (r *ReviewWithAuthor) DisplayUsername() string {
	if r.Username == nil || *r.Username == "" {
		return AnonymousUsername
	}
	return *r.Username
}
