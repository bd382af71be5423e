package handler

const (
	jsonKeyError = "error"

	paramID = "id"

	queryLimit  = "limit"
	queryOffset = "offset"

	msgInvalidUnitID = "invalid unit id"
)
