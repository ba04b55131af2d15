package dto

// DispatchRequest is the optional body of a dispatch trigger. Without an
// order id the whole eligible window is processed.
type DispatchRequest struct {
	OrderID *int64 `json:"order_id,omitempty"`
}

type ProcessedResponse struct {
	Processed int `json:"processed"`
}
