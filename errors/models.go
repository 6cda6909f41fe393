package errors

const (
	ObjectIDInvalidErrorCode  = 200_001
	ObjectIDNotFoundErrorCode = 200_002
	BookNotFoundErrorCode     = 200_003
	BookNotModifiedErrorCode  = 200_004
)

// ObjectIDInvalidError indicates user gives a value that is not a hex ObjectID
var ObjectIDInvalidError = new(ObjectIDInvalidErrorCode, "ObjectIDInvalid", "Bad Request: %q is not a valid id")

// ObjectIDNotFoundError indicates no document in the collection has the given ID
var ObjectIDNotFoundError = new(ObjectIDNotFoundErrorCode, "ObjectIDNotFound", "Item with ID %s is not exist")

var BookNotFoundError = new(BookNotFoundErrorCode, "BookNotFound", "Libro no encontrado")

// BookNotModifiedError is reported with status 200, an update that touched nothing is not a failure
var BookNotModifiedError = new(BookNotModifiedErrorCode, "BookNotModified", "Id no existe")
