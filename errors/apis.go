package errors

const (
	MissingIDQueryErrorCode  = 300_001
	MissingDeleteIDErrorCode = 300_002
	EmptyBodyErrorCode       = 300_003
	MalformedBodyErrorCode   = 300_004
	RequiredFieldsErrorCode  = 300_005
)

// MissingIDQueryError indicates GET /libro was called without id, it is answered with 404
var MissingIDQueryError = new(MissingIDQueryErrorCode, "MissingIDQuery", "Bad request")

var MissingDeleteIDError = new(MissingDeleteIDErrorCode, "MissingDeleteID", "Bad Request: Id no existe")

// EmptyBodyError indicates PUT /libro was called with an empty or falsy JSON body, it is answered with 404
var EmptyBodyError = new(EmptyBodyErrorCode, "EmptyBody", "Bad Request")

var MalformedBodyError = new(MalformedBodyErrorCode, "MalformedBody", "Bad Request: %s")

var RequiredFieldsError = new(RequiredFieldsErrorCode, "RequiredFields", "Bad Request: %s")
