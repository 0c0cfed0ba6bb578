package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the standard success envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Account ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type deactivateRequest struct {
	CurrentUser string `json:"current_user" validate:"required"`
	Username    string `json:"username"     validate:"required"`
}

// --- Catalog ---

// createProductRequest uses pointers for the numeric required fields so that
// a legitimate zero value is distinguishable from an omitted one.
type createProductRequest struct {
	CurrentUser   string   `json:"current_user"    validate:"required"`
	Name          string   `json:"name"            validate:"required"`
	AmountInStock *int     `json:"amount_in_stock" validate:"required"`
	Price         *float64 `json:"price"           validate:"required"`
	InStock       *bool    `json:"in_stock"`
}

// updateProductRequest is a partial update: omitted fields keep their stored
// values.
type updateProductRequest struct {
	CurrentUser   string   `json:"current_user" validate:"required"`
	Name          *string  `json:"name"`
	AmountInStock *int     `json:"amount_in_stock"`
	Price         *float64 `json:"price"`
	InStock       *bool    `json:"in_stock"`
}

type actingUserRequest struct {
	CurrentUser string `json:"current_user" validate:"required"`
}

type categoryRequest struct {
	CurrentUser string `json:"current_user" validate:"required"`
	Name        string `json:"name"         validate:"required"`
}

type productResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AmountInStock int     `json:"amount_in_stock"`
	Price         float64 `json:"price"`
	InStock       bool    `json:"in_stock"`
}

// --- Cart ---

type addToCartRequest struct {
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

// viewCartRequest accepts credentials in the JSON body (the inherited wire
// contract) or as query parameters.
type viewCartRequest struct {
	Username string `json:"username" query:"username" validate:"required"`
	Password string `json:"password" query:"password" validate:"required"`
}

type cartEntryResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type viewCartResponse struct {
	Cart       []cartEntryResponse `json:"cart"`
	TotalPrice float64             `json:"total_price"`
}
