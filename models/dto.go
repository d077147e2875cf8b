package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type CheckoutRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Address  string `json:"address"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required,min=3"`
	Description string  `json:"description" form:"description"`
	CategoryID  int     `json:"category_id" form:"category_id" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required"`
	Stock       int     `json:"stock" form:"stock"`
	IsOnSale    bool    `json:"is_on_sale" form:"is_on_sale"`
	IsFeatured  bool    `json:"is_featured" form:"is_featured"`
}

type CreateBannerRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	CouponCode      string `json:"coupon_code"`
	DiscountPercent int    `json:"discount_percent" binding:"omitempty,min=0,max=100"`
	BgColor         string `json:"bgColor"`
	TextColor       string `json:"textColor"`
}
