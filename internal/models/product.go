package models

// Product represents a single catalog entry. IDs are assigned by the
// caller, not generated, so auto-increment is disabled on the key.
type Product struct {
	ID          int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ProductName string  `json:"productName" gorm:"column:product_name;type:varchar(24)"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// ProductPatch carries a partial update. A nil field means "leave
// unchanged"; a non-nil field is validated and applied even when it
// points at a zero value, so stock can legitimately be set to 0.
type ProductPatch struct {
	ProductName *string  `json:"productName"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// ProductChange is one element of a batch update: the target id plus
// the fields to change.
type ProductChange struct {
	ID int `json:"id"`
	ProductPatch
}
