package types

// ChefPatch is the request body for creating or updating a chef.
type ChefPatch struct {
	FirebaseID *string `json:"firebase_id"`
	Username   *string `json:"username"`
}

// ImportRequest asks the server to scrape a page and store the result as a
// recipe owned by the caller.
type ImportRequest struct {
	URL string `json:"url" binding:"required"`
}

// DeleteResponse reports the id of a deleted recipe.
type DeleteResponse struct {
	ID int64 `json:"id"`
}
