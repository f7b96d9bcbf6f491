package policy

import "sitepro/internal/domains/bid/model"

const (
	MaskedEmail = "***@***.com"
	MaskedPhone = "**********"
)

// IsVisible reports whether viewerID may see the bidder's contact fields.
func IsVisible(bid model.Bid, viewerID string) bool {
	return viewerID == bid.BidderID || bid.Status == model.StatusApproved || bid.ContactVisible
}

// Contact returns the email and phone viewerID is allowed to see. The bid itself is not touched.
func Contact(bid model.Bid, viewerID string) (email, phone string) {
	if IsVisible(bid, viewerID) {
		return bid.BidderEmail, bid.BidderPhone
	}

	return MaskedEmail, MaskedPhone
}
