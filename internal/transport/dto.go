package transport

type ProductRequest struct {
	Title       string `json:"title"`
	Img         string `json:"img"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	CategoryID  uint   `json:"category_id"`
}

type CategoryRequest struct {
	CategoryName string `json:"category_name"`
}

type UserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id"`
}

type CartLookupResponse struct {
	ID    uint `json:"id"`
	Found bool `json:"found"`
}

type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}
