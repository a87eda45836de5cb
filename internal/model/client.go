package model

// Client is a customer record used to populate the order form's client
// picker.
type Client struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
