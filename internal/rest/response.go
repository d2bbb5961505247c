package rest

// ResponseError is the error envelope returned by every handler.
type ResponseError struct {
	Message string `json:"message"`
}
