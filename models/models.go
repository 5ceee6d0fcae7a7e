package models

// CustomizationType defines the known customization kinds. The field is
// an open string — the store accepts values outside this list.
type CustomizationType string

const (
	TypeTopping CustomizationType = "topping"
	TypeSide    CustomizationType = "side"
	TypeSize    CustomizationType = "size"
	TypeCrust   CustomizationType = "crust"
)

// Category is a menu section, unique by name within a seed run.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Customization struct {
	Name  string            `json:"name"`
	Price float64           `json:"price"`
	Type  CustomizationType `json:"type"`
}

// MenuItem is the document written to the menu collection. ImageURL is
// the hosted URL after upload, not the original source URL. CategoryID
// references a category created earlier in the same run; when the
// category is unknown the field is omitted entirely.
type MenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Calories    int     `json:"calories"`
	Protein     int     `json:"protein"`
	CategoryID  string  `json:"category_id,omitempty"`
}

// MenuCustomization is one edge of the many-to-many relation between
// menu items and customizations. Both IDs are store-generated within
// the current run.
type MenuCustomization struct {
	MenuID          string `json:"menu_id"`
	CustomizationID string `json:"customization_id"`
}
