// internal/domain/models/site.go
package models

// Site-wide identity used by layouts, metadata and the relay payload.
const (
	SiteName     = "Cardboard Bale Recycling"
	SiteTagline  = "Turn Your Waste Into Revenue"
	SupportEmail = "support@cardboardbalerecycling.com"
	SupportPhone = "(800) CARDBOARD"
	SupportTel   = "+18002273262"
)
