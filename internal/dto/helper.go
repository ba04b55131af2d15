package dto

// HelperOrderUpdate is the body of the best-effort PATCH to the helper
// backend after a submission attempt or a status change.
type HelperOrderUpdate struct {
	ID                 string `json:"Id"`
	IsError            bool   `json:"IsError"`
	IikoStatus         string `json:"IikoStatus"`
	DeliveryOrderID    string `json:"DeliveryOrderId,omitempty"`
	OrganizationIikoID string `json:"OrganizationIikoId,omitempty"`
	InvoiceID          string `json:"InvoiceId,omitempty"`
}
