package dto

// LoginRequest authenticates a design-tool user against a PLM server.
type LoginRequest struct {
	UserID       string `json:"userId" binding:"required"`
	Password     string `json:"password" binding:"required"`
	InternalUser string `json:"internalUser"`
}

// ColorwayMappingRequest is one colorway assignment in a publish request.
type ColorwayMappingRequest struct {
	InternalName string `json:"internalName" binding:"required"`
	ExternalName string `json:"externalName" binding:"required"`
	AssocID      string `json:"assocId"`
}

// InternalColorwayRequest declares one design-tool colorway, in tool order.
type InternalColorwayRequest struct {
	Name      string `json:"name" binding:"required"`
	ColorID   string `json:"colorId"`
	ColorName string `json:"colorName"`
}

// RecentStylesQuery lists recently published style links.
type RecentStylesQuery struct {
	InternalOwner string `form:"internalOwner" binding:"required"`
	ExternalOwner string `form:"externalOwner" binding:"required"`
	Limit         int    `form:"limit"`
}
