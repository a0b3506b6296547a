package client

// Variant selects which admin route family a management call goes through.
// The API exposes the same operations under /admin for full admins and
// /s/admin for sub-admins whose capabilities are granted individually.
type Variant string

const (
	VariantAdmin    Variant = "/admin"
	VariantSubAdmin Variant = "/s/admin"
)
