package domain

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleSeller   UserRole = "seller"
)

// User is the authenticated account owned by the session store.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Address     string   `json:"address,omitempty"`
	Avatar      string   `json:"avatar,omitempty"`
	Role        UserRole `json:"role,omitempty"`
}

// Product is the canonical catalog record every surface consumes,
// regardless of which upstream shape it was decoded from.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Model       string  `json:"model,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}

// CartEntry snapshots product fields at add time; later catalog changes
// do not reach back into the cart.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity for this entry.
func (e CartEntry) Subtotal() float64 {
	return e.Product.Price * float64(e.Quantity)
}

// ProductDraft carries seller form input. Price and Stock stay strings
// until validation parses them; a non-numeric price is a validation
// failure, never a silent zero.
type ProductDraft struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Price       string `json:"price"`
	Stock       string `json:"stock,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl"`
}

// SellerStats summarizes a seller's inventory.
type SellerStats struct {
	TotalProducts int     `json:"totalProducts"`
	LowStock      int     `json:"lowStock"`
	TotalValue    float64 `json:"totalValue"`
}
