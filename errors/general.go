package errors

const (
	UnknownErrorCode          = 100_001
	EndpointNotFoundErrorCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "Internal Server Error")

var EndpointNotFoundError = new(EndpointNotFoundErrorCode, "EndpointNotFound", "Endpoint not found")
