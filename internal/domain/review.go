package domain

// Review references its product by numeric id with no referential check;
// deleting the product leaves the review orphaned.
type Review struct {
	ID        string `json:"id"`
	ProductID int    `json:"productId"`
	UserID    string `json:"userId,omitempty"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
}
