package intakesrvc

import (
	"fmt"
	"net/http"

	"github.com/opsfront/intake-backend/srvcerror"
)

const ErrCodeValidation = "validation_error"

func ErrValidation(field string, reason string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeValidation,
		fmt.Sprintf("%s: %s", field, reason),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeStoreUnavailable = "store_unavailable"

func ErrStoreUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeStoreUnavailable,
		"submission storage is temporarily unavailable, please try again",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"the requested submission was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeUnauthorized = "unauthorized_access"

func ErrUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"a valid staff credential is required",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeInvalidStatus = "invalid_status"

func ErrInvalidStatus(status string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStatus,
		fmt.Sprintf("%q is not a recognized submission status", status),
	).SetHttpStatusCode(http.StatusBadRequest)
}
